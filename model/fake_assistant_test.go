package model

import (
	"context"
	"sync"
)

// fakeAssistant records every request and answers with canned text.
type fakeAssistant struct {
	mu sync.Mutex

	scriptCalls []string
	singleCalls [][2]string
	batchCalls  [][]BatchCommand
	chatCalls   []chatCall

	reply string
}

type chatCall struct {
	history []Message
	message string
}

func newFakeAssistant(reply string) *fakeAssistant {
	return &fakeAssistant{reply: reply}
}

func (f *fakeAssistant) GenerateScript(ctx context.Context, task string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scriptCalls = append(f.scriptCalls, task)
	return f.reply
}

func (f *fakeAssistant) SimulateSingle(ctx context.Context, method, params string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.singleCalls = append(f.singleCalls, [2]string{method, params})
	return f.reply
}

func (f *fakeAssistant) SimulateBatch(ctx context.Context, commands []BatchCommand) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls = append(f.batchCalls, commands)
	return f.reply
}

func (f *fakeAssistant) Chat(ctx context.Context, history []Message, message string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatCalls = append(f.chatCalls, chatCall{history: history, message: message})
	return f.reply
}

func (f *fakeAssistant) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.scriptCalls) + len(f.singleCalls) + len(f.batchCalls) + len(f.chatCalls)
}
