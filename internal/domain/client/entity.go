package client

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("client name is required")
	ErrPhoneRequired = errors.New("client phone with digits is required")
	ErrInvalidStage  = errors.New("invalid funnel stage")
)

type Client struct {
	id            uuid.UUID
	name          string
	phone         string
	email         string
	tags          []string
	funnelStage   FunnelStage
	createdAt     time.Time
	lastContactAt time.Time
}

func NewClient(name, phone, email string, now time.Time) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	phone = strings.TrimSpace(phone)
	if NormalizePhone(phone) == "" {
		return nil, ErrPhoneRequired
	}
	return &Client{
		id:            uuid.New(),
		name:          name,
		phone:         phone,
		email:         strings.TrimSpace(email),
		tags:          []string{TagNewLead},
		funnelStage:   StageNew,
		createdAt:     now,
		lastContactAt: now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	Name          string
	Phone         string
	Email         string
	Tags          []string
	FunnelStage   FunnelStage
	CreatedAt     time.Time
	LastContactAt time.Time
}

func ReconstructClient(p ReconstructParams) *Client {
	stage := p.FunnelStage
	if !stage.IsValid() {
		stage = StageNew
	}
	return &Client{
		id:            p.ID,
		name:          p.Name,
		phone:         p.Phone,
		email:         p.Email,
		tags:          append([]string(nil), p.Tags...),
		funnelStage:   stage,
		createdAt:     p.CreatedAt,
		lastContactAt: p.LastContactAt,
	}
}

// RefreshContact records a new contact from a returning client.
func (c *Client) RefreshContact(name, email string, now time.Time) {
	if n := strings.TrimSpace(name); n != "" {
		c.name = n
	}
	if e := strings.TrimSpace(email); e != "" {
		c.email = e
	}
	if c.HasTag(TagNewLead) {
		c.AddTag(TagReturningGuest)
	}
	c.lastContactAt = now
}

// AddTag keeps insertion order and ignores duplicates.
func (c *Client) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" || c.HasTag(tag) {
		return
	}
	c.tags = append(c.tags, tag)
}

func (c *Client) HasTag(tag string) bool {
	for _, t := range c.tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func (c *Client) SetStage(stage FunnelStage) error {
	if !stage.IsValid() {
		return ErrInvalidStage
	}
	c.funnelStage = stage
	return nil
}

// AdvanceTo moves the client forward in the funnel and never back, except that a
// lost client is revived by any new booking event. It reports whether the stage changed.
func (c *Client) AdvanceTo(stage FunnelStage) (bool, error) {
	if !stage.IsValid() {
		return false, ErrInvalidStage
	}
	if stage.rank() <= c.funnelStage.rank() && c.funnelStage != StageLost {
		return false, nil
	}
	c.funnelStage = stage
	return true, nil
}

func (c *Client) NormalizedPhone() string {
	return NormalizePhone(c.phone)
}

func (c *Client) ID() uuid.UUID            { return c.id }
func (c *Client) Name() string             { return c.name }
func (c *Client) Phone() string            { return c.phone }
func (c *Client) Email() string            { return c.email }
func (c *Client) Tags() []string           { return append([]string(nil), c.tags...) }
func (c *Client) FunnelStage() FunnelStage { return c.funnelStage }
func (c *Client) CreatedAt() time.Time     { return c.createdAt }
func (c *Client) LastContactAt() time.Time { return c.lastContactAt }

func (c *Client) Clone() *Client {
	cp := *c
	cp.tags = append([]string(nil), c.tags...)
	return &cp
}
