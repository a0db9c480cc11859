package domain

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type Span struct {
	Name    string    `json:"name"`
	startTs time.Time `json:"-"`

	Elapsed *int64 `json:"elapsed"`
}

type profileKey struct{}

// ContextProfileKey is the context key under which the run profile lives.
var ContextProfileKey = profileKey{}

// Profile records the stages of a refresh or optimize run.
type Profile struct {
	mu      sync.Mutex
	Spans   []*Span
	startTs time.Time
	TotalMs *int64
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}

	return newProfile, newProfile.End
}

func NewCtxWithProfile(ctx context.Context, p *Profile) context.Context {
	return context.WithValue(ctx, ContextProfileKey, p)
}

// GetProfile returns the profile stored in ctx, or a detached one so
// callers never need a nil check.
func GetProfile(ctx context.Context) *Profile {
	if p, ok := ctx.Value(ContextProfileKey).(*Profile); ok && p != nil {
		return p
	}
	p, _ := NewProfile()
	return p
}

func (p *Profile) End() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	t := time.Since(p.startTs).Milliseconds()
	if p.TotalMs == nil {
		p.TotalMs = &t
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

// StartNewSpan ends the last span and begins a new one.
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	bytes, err := json.Marshal(p.Spans)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
