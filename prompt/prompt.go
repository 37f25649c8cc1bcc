// Package prompt renders the text prompts sent to the generation service.
//
// Every builder is pure: the same inputs always produce the same prompt, no
// I/O is performed, and sequence inputs are rendered in the order given.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"bitrpc/reference"
)

// ErrEmptyTask is returned by BuildScriptPrompt for a blank task description.
var ErrEmptyTask = errors.New("task description is empty")

// Command is one {method, params} pair of a batch simulation.
type Command struct {
	Method string
	Params string
}

// Turn is one role-tagged entry of a conversation history.
type Turn struct {
	Role    string
	Content string
}

// BuildScriptPrompt asks for a complete python-bitcoinrpc script solving task.
func BuildScriptPrompt(task string) (string, error) {
	if strings.TrimSpace(task) == "" {
		return "", ErrEmptyTask
	}

	var sb strings.Builder
	sb.WriteString("You are an expert Python developer specializing in Bitcoin and Cryptocurrency development.\n")
	sb.WriteString("Your task is to generate a Python script using the 'python-bitcoinrpc' library based on the user's request.\n\n")
	sb.WriteString("Here is the library documentation you must strictly adhere to:\n")
	sb.WriteString(reference.BitcoinRPCDocs)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "USER REQUEST: \"%s\"\n\n", task)
	sb.WriteString("Instructions:\n")
	sb.WriteString("1. Provide a complete, runnable Python script.\n")
	sb.WriteString("2. Include comments explaining key parts.\n")
	sb.WriteString("3. Ensure error handling (JSONRPCException) is included.\n")
	sb.WriteString("4. Do not include markdown formatting (like ```) in the output, just the raw code.\n")
	return sb.String(), nil
}

// BuildSingleSimulationPrompt asks for the JSON response of one RPC call.
func BuildSingleSimulationPrompt(method, params string) string {
	var sb strings.Builder
	sb.WriteString("You are a simulator for a Bitcoin Core node JSON-RPC interface.\n")
	fmt.Fprintf(&sb, "The user wants to see what the JSON response looks like for the method: \"%s\".\n", method)
	fmt.Fprintf(&sb, "Parameters provided: \"%s\".\n\n", params)
	sb.WriteString("Instructions:\n")
	sb.WriteString("1. Return ONLY one valid JSON object.\n")
	sb.WriteString("2. Do not include any explanations or markdown.\n")
	sb.WriteString("3. Generate realistic mock data (hashes, timestamps, etc.).\n")
	sb.WriteString("4. If the method is unknown, return a JSON-RPC error object.\n")
	return sb.String()
}

// BuildBatchSimulationPrompt asks for the JSON array answering a batch of calls.
// Requests are labelled from 1 in input order, and the reply must hold exactly
// one response object per request.
func BuildBatchSimulationPrompt(cmds []Command) string {
	var sb strings.Builder
	sb.WriteString("You are a simulator for a Bitcoin Core node JSON-RPC interface handling a BATCH request.\n")
	sb.WriteString("The user sent the following commands in a single HTTP batch:\n\n")
	for i, c := range cmds {
		fmt.Fprintf(&sb, "%s: Method=\"%s\", Params=\"%s\"\n", RequestLabel(i+1), c.Method, c.Params)
	}
	sb.WriteString("\nInstructions:\n")
	sb.WriteString("1. Return ONLY a valid JSON Array containing the responses.\n")
	sb.WriteString("2. Do not include any explanations or markdown.\n")
	sb.WriteString("3. Generate realistic mock data.\n")
	fmt.Fprintf(&sb, "4. The output must be a JSON array of exactly %d objects, where each object corresponds to a request, in request order.\n", len(cmds))
	sb.WriteString("5. Each response object should include 'result', 'error', and 'id'.\n")
	return sb.String()
}

// RequestLabel is the ordinal label used for the n-th (1-based) batch request.
func RequestLabel(n int) string {
	return fmt.Sprintf("Request %d", n)
}

// BuildChatPrompt returns the assistant's system instruction. The instruction
// only carries the documentation, so it is the same for every history.
func BuildChatPrompt(history []Turn) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant for the 'python-bitcoinrpc' library.\n")
	sb.WriteString("Use the following documentation to answer user questions:\n")
	sb.WriteString(reference.BitcoinRPCDocs)
	sb.WriteString("\n\nKeep answers concise and code-focused.\n")
	return sb.String()
}
