package model

import (
	"strings"

	"github.com/google/uuid"
)

// BatchCommand is one editable {method, params} row of a batch simulation.
type BatchCommand struct {
	ID     string
	Method string
	Params string
}

// Editable BatchCommand fields.
const (
	FieldMethod = "method"
	FieldParams = "params"
)

// BatchList is an ordered list of batch commands whose IDs are unique.
// IDs are generated with uuid and only need to be unique within a session.
type BatchList struct {
	commands []BatchCommand
}

// NewBatchList creates a list holding one command per {method, params} pair.
func NewBatchList(pairs ...[2]string) *BatchList {
	b := &BatchList{}
	for _, p := range pairs {
		b.Append(p[0], p[1])
	}
	return b
}

// Append adds a command at the end of the list and returns it.
func (b *BatchList) Append(method, params string) BatchCommand {
	cmd := BatchCommand{
		ID:     uuid.New().String(),
		Method: method,
		Params: params,
	}
	b.commands = append(b.commands, cmd)
	return cmd
}

// Add appends an empty command.
func (b *BatchList) Add() BatchCommand {
	return b.Append("", "")
}

// Update sets one field of the command with the given id.
// Returns false if no such command exists or the field is unknown.
func (b *BatchList) Update(id, field, value string) bool {
	for i := range b.commands {
		if b.commands[i].ID != id {
			continue
		}
		switch field {
		case FieldMethod:
			b.commands[i].Method = value
		case FieldParams:
			b.commands[i].Params = value
		default:
			return false
		}
		return true
	}
	return false
}

// Remove deletes the command with the given id, keeping the order of the rest.
func (b *BatchList) Remove(id string) bool {
	for i := range b.commands {
		if b.commands[i].ID == id {
			b.commands = append(b.commands[:i], b.commands[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the command with the given id.
func (b *BatchList) Get(id string) (BatchCommand, bool) {
	for _, c := range b.commands {
		if c.ID == id {
			return c, true
		}
	}
	return BatchCommand{}, false
}

// Items returns a copy of the commands in list order.
func (b *BatchList) Items() []BatchCommand {
	out := make([]BatchCommand, len(b.commands))
	copy(out, b.commands)
	return out
}

// Valid returns the commands with a non-blank method, in list order.
func (b *BatchList) Valid() []BatchCommand {
	var out []BatchCommand
	for _, c := range b.commands {
		if strings.TrimSpace(c.Method) != "" {
			out = append(out, c)
		}
	}
	return out
}

func (b *BatchList) Len() int {
	return len(b.commands)
}
