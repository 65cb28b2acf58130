// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package flash implements one-shot session notices. Messages are queued per
// severity in insertion order and drained by the next render.
package flash

import (
	"context"

	"github.com/alexedwards/scs/v2"
)

// Kind is a flash severity.
type Kind string

// Flash severities.
const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
)

// kinds lists every severity in the order Pop drains them.
var kinds = []Kind{KindError, KindSuccess}

func (k Kind) key() string {
	return "flash_" + string(k)
}

// Messages is the drained content of a flash queue.
type Messages struct {
	Error   []string
	Success []string
}

// Empty reports whether no message is queued.
func (m Messages) Empty() bool {
	return len(m.Error) == 0 && len(m.Success) == 0
}

// Queue stores flash messages in the request's session.
type Queue struct {
	sm *scs.SessionManager
}

// New returns a Queue backed by sm.
func New(sm *scs.SessionManager) *Queue {
	return &Queue{sm: sm}
}

// Add appends message to the queue of the given kind.
func (q *Queue) Add(ctx context.Context, kind Kind, message string) {
	pending, _ := q.sm.Get(ctx, kind.key()).([]string)
	q.sm.Put(ctx, kind.key(), append(pending, message))
}

// Error queues an error message.
func (q *Queue) Error(ctx context.Context, message string) {
	q.Add(ctx, KindError, message)
}

// Success queues a success message.
func (q *Queue) Success(ctx context.Context, message string) {
	q.Add(ctx, KindSuccess, message)
}

// Pop returns and clears every queued message.
func (q *Queue) Pop(ctx context.Context) Messages {
	var m Messages
	for _, kind := range kinds {
		msgs, _ := q.sm.Pop(ctx, kind.key()).([]string)
		switch kind {
		case KindError:
			m.Error = msgs
		case KindSuccess:
			m.Success = msgs
		}
	}
	return m
}
