// Package snapshot compares values against JSON files stored in the calling package's testdata directory
package snapshot

import (
	"encoding/json"
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

// UpdateEnv is the environment variable that rewrites every snapshot that is compared
const UpdateEnv = "BJ_UPDATE_SNAPSHOTS"

var (
	mu        sync.Mutex
	funcCount = make(map[string]int)
)

// ValidateSnapshot compares obj to testdata/<test func>-<n>.json
// n counts the calls from the same function. depth is the number of helper frames between the test and this call.
// A missing snapshot is written instead of compared.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	filename := nextFilename(depth + 2)
	actual, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || (err == nil && os.Getenv(UpdateEnv) != "") {
		write(t, filename, actual)
		return
	} else if err != nil {
		t.Fatalf("could not read snapshot: %v", err)
	}

	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(actual)), msgAndArgs...) {
		t.Logf("snapshot %s (set %s=1 to rewrite)", filename, UpdateEnv)
	}
}

func nextFilename(skip int) string {
	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	mu.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	mu.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))
}

func write(t *testing.T, filename string, data []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		t.Fatalf("could not create snapshot directory: %v", err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0o644); err != nil {
		t.Fatalf("could not write snapshot: %v", err)
	}
}
