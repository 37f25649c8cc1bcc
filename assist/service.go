package assist

import (
	"context"

	"bitrpc/config"
	"bitrpc/model"
	"bitrpc/prompt"
)

// Service implements model.Assistant on top of a Client.
type Service struct {
	client *Client
}

var _ model.Assistant = (*Service)(nil)

func NewService(client *Client) *Service {
	return &Service{client: client}
}

// Client returns the client the service sends requests through.
func (s *Service) Client() *Client {
	return s.client
}

func (s *Service) GenerateScript(ctx context.Context, task string) string {
	return s.Script(ctx, task).Text
}

// Script is GenerateScript with the structured outcome.
func (s *Service) Script(ctx context.Context, task string) Result {
	p, err := prompt.BuildScriptPrompt(task)
	if err != nil {
		// Blank tasks are gated before submit; nothing is sent.
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Assist] script prompt rejected: %v", err)
		}
		return Result{Text: EmptyPlaceholder(KindScript), Err: err}
	}
	return s.client.Generate(ctx, KindScript, p)
}

func (s *Service) SimulateSingle(ctx context.Context, method, params string) string {
	return s.Single(ctx, method, params).Text
}

// Single is SimulateSingle with the structured outcome.
func (s *Service) Single(ctx context.Context, method, params string) Result {
	res := s.client.Generate(ctx, KindSingleSimulation, prompt.BuildSingleSimulationPrompt(method, params))
	res.Text = StripFences(res.Text)
	return res
}

func (s *Service) SimulateBatch(ctx context.Context, commands []model.BatchCommand) string {
	return s.Batch(ctx, commands).Text
}

// Batch is SimulateBatch with the structured outcome.
func (s *Service) Batch(ctx context.Context, commands []model.BatchCommand) Result {
	cmds := make([]prompt.Command, len(commands))
	for i, c := range commands {
		cmds[i] = prompt.Command{Method: c.Method, Params: c.Params}
	}

	res := s.client.Generate(ctx, KindBatchSimulation, prompt.BuildBatchSimulationPrompt(cmds))
	res.Text = StripFences(res.Text)
	return res
}

func (s *Service) Chat(ctx context.Context, history []model.Message, message string) string {
	return s.Reply(ctx, history, message).Text
}

// Reply is Chat with the structured outcome.
func (s *Service) Reply(ctx context.Context, history []model.Message, message string) Result {
	turns := make([]prompt.Turn, len(history))
	for i, m := range history {
		turns[i] = prompt.Turn{Role: m.Role, Content: m.Content}
	}

	return s.client.Chat(ctx, KindChat, prompt.BuildChatPrompt(turns), history, message)
}
