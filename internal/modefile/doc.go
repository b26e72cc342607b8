// Package modefile loads game mode definitions from HCL files.
//
// A file may declare any number of modes:
//
//	mode "deathmatch" "arena" {
//	  settings {
//	    roundsToWinGame  = 3
//	    pointsToWinRound = 2
//	    allowTeams       = false
//	  }
//
//	  on "GameStart" {
//	    message    = "Fight!"
//	    wait_steps = 2
//	  }
//	}
//
// The first label is the mode type registered in the registry, the second is
// the handler id. Settings keep the order in which they are written. Each
// "on" block becomes an Announcement hook.
package modefile
