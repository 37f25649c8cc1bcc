package model

import "context"

// Assistant is the generation backend the screen states talk to.
//
// Every method performs exactly one request to the generation service and
// always returns displayable text: service failures are already converted to
// fallback text by the implementation.
type Assistant interface {
	GenerateScript(ctx context.Context, task string) string
	SimulateSingle(ctx context.Context, method, params string) string
	SimulateBatch(ctx context.Context, commands []BatchCommand) string
	Chat(ctx context.Context, history []Message, message string) string
}
