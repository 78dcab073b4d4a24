package advice

import "context"

// Generator is the external text-generation capability. Implementations make
// exactly one attempt per call; transport, auth, quota and timeout failures
// surface as a *ServiceError.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error)
}

type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return "advice: " + e.Op + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
