package integrationtests

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/specialistvlad/modehooks/internal/app"
	"github.com/specialistvlad/modehooks/internal/registry"
	"github.com/specialistvlad/modehooks/internal/testutil"
	"github.com/stretchr/testify/require"
)

// harnessResult holds the outcome of a runIntegrationTest call.
type harnessResult struct {
	App *app.App
	Err error

	// Announcements are the "[id] Hook: message" lines, in print order.
	Announcements []string
	// Settings maps mode id to its final settings, decoded from the JSON
	// lines printed at the end of a run.
	Settings map[string][]setting
}

type setting struct {
	Name  string
	Value any
}

// runIntegrationTest writes files to a temp dir, runs the app over it with
// the given modules and splits the output.
func runIntegrationTest(t *testing.T, files map[string]string, modules ...registry.Module) *harnessResult {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	cfg, err := app.NewConfig(app.Config{ModesPath: dir, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := app.NewApp(out, cfg, modules...)
	res := &harnessResult{App: a, Settings: make(map[string][]setting)}
	res.Err = a.Run(testutil.Context(t))

	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if !strings.HasPrefix(line, "{") {
			if line != "" {
				res.Announcements = append(res.Announcements, line)
			}
			continue
		}
		var decoded struct {
			ID       string `json:"id"`
			Settings []struct {
				Name  string `json:"name"`
				Value any    `json:"value"`
			} `json:"settings"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &decoded), "line: %s", line)
		for _, s := range decoded.Settings {
			res.Settings[decoded.ID] = append(res.Settings[decoded.ID], setting{Name: s.Name, Value: s.Value})
		}
	}
	return res
}
