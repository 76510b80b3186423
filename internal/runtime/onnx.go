package runtime

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNXScorer wraps one ONNX session with preallocated [1,n] input and
// [1,1] output tensors. Tensors are reused across calls, so Score
// serializes on a mutex; scoring is a single fast call and runs inline
// with the request.
type ONNXScorer struct {
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
	dims    int

	mu sync.Mutex
}

var ortInitOnce sync.Once
var ortInitErr error

func initONNXRuntime() error {
	ortInitOnce.Do(func() {
		if lib := resolveSharedLibraryPath(); lib != "" {
			ort.SetSharedLibraryPath(lib)
		}
		if !ort.IsInitialized() {
			ortInitErr = ort.InitializeEnvironment()
		}
	})
	return ortInitErr
}

// NewONNXScorer loads a serialized model and prepares a reusable session.
// dims must equal the schema's vector length for the same model.
func NewONNXScorer(modelPath, inputName, outputName string, dims int) (*ONNXScorer, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model file missing at %s: %w", modelPath, err)
	}
	if err := initONNXRuntime(); err != nil {
		return nil, fmt.Errorf("initialize onnxruntime: %w", err)
	}

	inputShape := ort.NewShape(1, int64(dims))
	input, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("allocate input tensor: %w", err)
	}
	outputShape := ort.NewShape(1, 1)
	output, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("allocate output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{inputName},
		[]string{outputName},
		[]ort.Value{input},
		[]ort.Value{output},
		nil,
	)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &ONNXScorer{session: session, input: input, output: output, dims: dims}, nil
}

// Score runs the model on a normalized vector and returns the sigmoid
// output as a probability.
func (s *ONNXScorer) Score(vec []float64) (float64, error) {
	if len(vec) != s.dims {
		return 0, fmt.Errorf("vector length %d does not match model input %d", len(vec), s.dims)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.input.GetData()
	for i, v := range vec {
		data[i] = float32(v)
	}
	if err := s.session.Run(); err != nil {
		return 0, fmt.Errorf("onnx run: %w", err)
	}
	return float64(s.output.GetData()[0]), nil
}

// resolveSharedLibraryPath locates the onnxruntime shared library.
// ONNXRUNTIME_SHARED_LIBRARY_PATH wins; otherwise common names and
// locations are probed. An empty result leaves the library default in
// place and lets initialization report the real error.
func resolveSharedLibraryPath() string {
	if env := strings.TrimSpace(os.Getenv("ONNXRUNTIME_SHARED_LIBRARY_PATH")); env != "" {
		return env
	}

	names := []string{
		"libonnxruntime.so",
		"onnxruntime.so",
		"libonnxruntime.dylib",
		"onnxruntime.dylib",
		"onnxruntime.dll",
	}
	dirs := []string{
		".",
		"/usr/local/lib",
		"/usr/lib",
		"/opt/homebrew/lib",
	}

	for _, dir := range dirs {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return ""
}
