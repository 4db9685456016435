package worksheet

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mathex/internal/problemgen"
	"github.com/abhisek/mathex/internal/rational"
)

// BundleVersion is the only bundle format version.
const BundleVersion = 1

//go:embed bundle.schema.json
var bundleSchemaJSON []byte

// ErrInvalidBundle is matched by every BundleError.
var ErrInvalidBundle = errors.New("invalid exercise bundle")

// BundleError reports a bundle that failed to parse or validate.
type BundleError struct {
	Err error
}

func (e *BundleError) Error() string {
	return fmt.Sprintf("invalid exercise bundle: %v", e.Err)
}

func (e *BundleError) Is(target error) bool { return target == ErrInvalidBundle }

func (e *BundleError) Unwrap() error { return e.Err }

// Bundle is the JSON worksheet: exercises with their answers, plus the
// parameters they were drawn with.
type Bundle struct {
	Version   int          `json:"version"`
	Range     int          `json:"range,omitempty"`
	Seed      uint64       `json:"seed,omitempty"`
	Exercises []BundleItem `json:"exercises"`
}

// BundleItem is one exercise in a Bundle.
type BundleItem struct {
	Index      int    `json:"index"`
	Expression string `json:"expression"`
	Answer     string `json:"answer"`
}

// NewBundle builds a Bundle from generated exercises.
func NewBundle(exercises []problemgen.Exercise, rangeBound int, seed uint64) Bundle {
	b := Bundle{
		Version:   BundleVersion,
		Range:     rangeBound,
		Seed:      seed,
		Exercises: make([]BundleItem, 0, len(exercises)),
	}
	for _, ex := range exercises {
		b.Exercises = append(b.Exercises, BundleItem{
			Index:      ex.Index,
			Expression: ex.Expression,
			Answer:     ex.Answer.String(),
		})
	}
	return b
}

// WriteBundle writes b as indented JSON.
func WriteBundle(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// ReadBundle parses and validates a bundle and returns its exercises.
func ReadBundle(r io.Reader) (Bundle, []problemgen.Exercise, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Bundle{}, nil, fmt.Errorf("read bundle: %w", err)
	}
	if err := validateBundle(raw); err != nil {
		return Bundle{}, nil, err
	}

	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return Bundle{}, nil, &BundleError{Err: err}
	}

	exercises := make([]problemgen.Exercise, 0, len(b.Exercises))
	for _, item := range b.Exercises {
		answer, err := rational.Parse(item.Answer)
		if err != nil {
			return Bundle{}, nil, &BundleError{Err: fmt.Errorf("exercise %d: %w", item.Index, err)}
		}
		exercises = append(exercises, problemgen.Exercise{
			Expression: item.Expression,
			Answer:     answer,
			Index:      item.Index,
		})
	}
	return b, exercises, nil
}

// validateBundle checks raw JSON against the embedded schema.
func validateBundle(raw []byte) error {
	// Decoded with json.Number so 64-bit seeds are checked exactly.
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &BundleError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := bundleSchema()
	if err != nil {
		return fmt.Errorf("compile bundle schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return &BundleError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// bundleSchema compiles the embedded schema once.
var bundleSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(bundleSchemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://worksheet-bundle.json"
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})
