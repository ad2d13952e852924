package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var funcCount = make(map[string]int)

// volatileKeys are JSON keys whose values change on every run (UUIDs, seeds)
var volatileKeys = map[string]bool{
	"gameId":   true,
	"playedAt": true,
	"seed":     true,
}

const scrubbed = "<scrubbed>"

// ValidateSnapshot performs snapshot testing
// Values under volatile keys are scrubbed before the comparison. A missing snapshot is written
// to testdata/ and the test passes.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	skip := 1 + depth

	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := funcCount[funcName]
	funcCount[funcName] = call + 1

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))

	clean, err := scrub(obj)
	if err != nil {
		panic(err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			create(filename, clean)
			return
		}

		panic(err)
	}

	t.Helper()
	objJSON, err := json.MarshalIndent(clean, "", "  ")
	if err != nil {
		panic(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

// scrub round-trips obj through JSON and replaces volatile values
func scrub(obj interface{}) (interface{}, error) {
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}

	var generic interface{}
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, err
	}

	return scrubValue(generic), nil
}

func scrubValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if volatileKeys[k] && inner != nil {
				val[k] = scrubbed
				continue
			}

			val[k] = scrubValue(inner)
		}
	case []interface{}:
		for i, inner := range val {
			val[i] = scrubValue(inner)
		}
	}

	return v
}

func create(filename string, obj interface{}) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		panic(err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		panic(err)
	}
}
