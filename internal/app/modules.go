package app

import (
	"github.com/specialistvlad/modehooks/internal/registry"
	"github.com/specialistvlad/modehooks/modules/deathmatch"
)

// coreModules is the definitive list of all game modes compiled into the
// modehooks binary.
var coreModules = []registry.Module{
	&deathmatch.Module{},
}
