// Package loki batches log entries and pushes them to a Grafana Loki endpoint.
package loki

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var ErrStopped = errors.New("loki pusher is stopped")

type Config struct {
	// URL of the push API, e.g. https://logs-prod.grafana.net/loki/api/v1/push
	URL string `validate:"required,url"`

	// BatchMaxSize is the number of entries that triggers a push.
	BatchMaxSize int `validate:"gte=1"`

	// BatchMaxWait is the longest an entry waits in the batch.
	BatchMaxWait time.Duration `validate:"gte=1"`

	// Labels are attached to the stream of every entry.
	Labels map[string]string

	// TenantID is sent as X-Scope-OrgID when set.
	TenantID string

	Username string
	Password string
}

func (cfg *Config) setDefaults() {
	if cfg.BatchMaxSize == 0 {
		cfg.BatchMaxSize = 1000
	}
	if cfg.BatchMaxWait == 0 {
		cfg.BatchMaxWait = 5 * time.Second
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
}

type Entry struct {
	Time    time.Time      `json:"-"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Caller  string         `json:"caller,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

type pushRequest struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

type Pusher struct {
	config  Config
	client  *http.Client
	onError func(error)

	entries chan Entry
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once
	batch   [][2]string
}

// New validates cfg and starts the background sender. onError receives failed pushes and
// must not log through the same pusher.
func New(cfg Config, onError func(error)) (*Pusher, error) {
	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid loki config")
	}
	if onError == nil {
		onError = func(error) {}
	}

	p := &Pusher{
		config:  cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		onError: onError,
		entries: make(chan Entry, cfg.BatchMaxSize),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		batch:   make([][2]string, 0, cfg.BatchMaxSize),
	}
	go p.run()
	return p, nil
}

func (p *Pusher) Push(e Entry) error {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	select {
	case <-p.quit:
		return ErrStopped
	default:
	}
	select {
	case <-p.quit:
		return ErrStopped
	case p.entries <- e:
		return nil
	}
}

// Stop flushes the pending batch and waits for the sender to exit.
func (p *Pusher) Stop() {
	p.once.Do(func() { close(p.quit) })
	<-p.done
}

func (p *Pusher) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.config.BatchMaxWait)
	defer ticker.Stop()

	for {
		select {
		case <-p.quit:
			p.drain()
			p.flush()
			return
		case e := <-p.entries:
			p.add(e)
			if len(p.batch) >= p.config.BatchMaxSize {
				p.flush()
			}
		case <-ticker.C:
			p.flush()
		}
	}
}

func (p *Pusher) drain() {
	for {
		select {
		case e := <-p.entries:
			p.add(e)
		default:
			return
		}
	}
}

func (p *Pusher) add(e Entry) {
	line, err := json.Marshal(e)
	if err != nil {
		p.onError(errors.Wrap(err, "failed to marshal log entry"))
		return
	}
	p.batch = append(p.batch, [2]string{strconv.FormatInt(e.Time.UnixNano(), 10), string(line)})
}

func (p *Pusher) flush() {
	if len(p.batch) == 0 {
		return
	}
	if err := p.send(p.batch); err != nil {
		p.onError(err)
	}
	p.batch = p.batch[:0]
}

func (p *Pusher) send(values [][2]string) error {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	body := pushRequest{Streams: []stream{{Stream: p.config.Labels, Values: values}}}
	if err := json.NewEncoder(gz).Encode(body); err != nil {
		return errors.Wrap(err, "failed to encode push request")
	}
	if err := gz.Close(); err != nil {
		return errors.Wrap(err, "failed to compress push request")
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.URL, &buf)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	if p.config.TenantID != "" {
		req.Header.Set("X-Scope-OrgID", p.config.TenantID)
	}
	if p.config.Username != "" {
		req.SetBasicAuth(p.config.Username, p.config.Password)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send logs")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected response from loki: %s, body: %s", resp.Status, respBody)
	}
	return nil
}
