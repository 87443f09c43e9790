// Package onnx scores feature vectors with the exported spam model through
// ONNX Runtime.
package onnx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mikey/spam-detector/internal/core"
	ort "github.com/yalue/onnxruntime_go"
	"go.uber.org/zap"
)

// ortEnv guards process-wide runtime initialization
var ortEnv struct {
	once sync.Once
	err  error
}

func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// Scorer runs one AdvancedSession over pre-allocated tensors. The tensors are
// shared between calls, so it is not safe for concurrent use.
type Scorer struct {
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
	size    int
	logger  *zap.Logger
}

// Options controls model loading
type Options struct {
	ModelPath      string
	LibraryPath    string
	IntraOpThreads int
}

// NewScorer loads the model and checks that it accepts vectors of vocabSize
func NewScorer(opts Options, vocabSize int, logger *zap.Logger) (*Scorer, error) {
	if err := initORT(opts.LibraryPath); err != nil {
		return nil, fmt.Errorf("failed to initialize onnxruntime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(opts.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model info from %s: %w", opts.ModelPath, err)
	}
	inputName, outputName, err := validateIO(inputs, outputs, vocabSize)
	if err != nil {
		return nil, err
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(vocabSize)))
	if err != nil {
		return nil, fmt.Errorf("failed to allocate input tensor: %w", err)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("failed to allocate output tensor: %w", err)
	}

	sessionOpts, err := ort.NewSessionOptions()
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("failed to create session options: %w", err)
	}
	defer sessionOpts.Destroy()
	if opts.IntraOpThreads > 0 {
		if err := sessionOpts.SetIntraOpNumThreads(opts.IntraOpThreads); err != nil {
			input.Destroy()
			output.Destroy()
			return nil, fmt.Errorf("failed to set intra-op threads: %w", err)
		}
	}

	session, err := ort.NewAdvancedSession(
		opts.ModelPath,
		[]string{inputName},
		[]string{outputName},
		[]ort.Value{input},
		[]ort.Value{output},
		sessionOpts,
	)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("failed to create onnx session: %w", err)
	}

	logger.Info("Loaded ONNX model",
		zap.String("path", opts.ModelPath),
		zap.String("input", inputName),
		zap.String("output", outputName),
		zap.Int("features", vocabSize))

	return &Scorer{
		session: session,
		input:   input,
		output:  output,
		size:    vocabSize,
		logger:  logger,
	}, nil
}

// validateIO checks for one float input whose last dimension is vocabSize
// and one output holding a single value per row.
func validateIO(inputs, outputs []ort.InputOutputInfo, vocabSize int) (string, string, error) {
	if len(inputs) != 1 {
		return "", "", fmt.Errorf("model must have exactly one input, got %d", len(inputs))
	}
	if len(outputs) != 1 {
		return "", "", fmt.Errorf("model must have exactly one output, got %d", len(outputs))
	}

	in := inputs[0]
	if in.DataType != ort.TensorElementDataTypeFloat {
		return "", "", fmt.Errorf("model input %q must be float32, got %s", in.Name, in.DataType)
	}
	if len(in.Dimensions) == 0 || in.Dimensions[len(in.Dimensions)-1] != int64(vocabSize) {
		return "", "", fmt.Errorf("model input %q has shape %v, expected last dimension %d",
			in.Name, in.Dimensions, vocabSize)
	}

	out := outputs[0]
	if out.DataType != ort.TensorElementDataTypeFloat {
		return "", "", fmt.Errorf("model output %q must be float32, got %s", out.Name, out.DataType)
	}
	for _, d := range out.Dimensions[min(1, len(out.Dimensions)):] {
		if d != 1 {
			return "", "", fmt.Errorf("model output %q has shape %v, expected a single value", out.Name, out.Dimensions)
		}
	}

	return in.Name, out.Name, nil
}

// Score runs inference on vector
func (s *Scorer) Score(ctx context.Context, vector core.FeatureVector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(vector) != s.size {
		return 0, fmt.Errorf("vector length %d does not match model input %d", len(vector), s.size)
	}

	data := s.input.GetData()
	for i, x := range vector {
		data[i] = float32(x)
	}

	if err := s.session.Run(); err != nil {
		return 0, fmt.Errorf("onnx inference failed: %w", err)
	}

	out := s.output.GetData()
	if len(out) == 0 {
		return 0, errors.New("onnx inference produced no output")
	}
	return float64(out[0]), nil
}

// ConcurrencySafe is false; callers must serialize Score
func (s *Scorer) ConcurrencySafe() bool {
	return false
}

// Close releases the session and its tensors
func (s *Scorer) Close() error {
	var errs []error
	if s.session != nil {
		errs = append(errs, s.session.Destroy())
	}
	if s.input != nil {
		errs = append(errs, s.input.Destroy())
	}
	if s.output != nil {
		errs = append(errs, s.output.Destroy())
	}
	return errors.Join(errs...)
}
