// Package notify fans seed, clear and drop results out to the optional Redis
// feed cache and Kafka topic. Neither channel can fail the calling command:
// errors are logged and the database result stands.
package notify

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/donavanyieh/Daily-Attention-UI/internal/cache"
	"github.com/donavanyieh/Daily-Attention-UI/internal/config"
	"github.com/donavanyieh/Daily-Attention-UI/internal/kafka"
	"github.com/donavanyieh/Daily-Attention-UI/internal/logging"
	"github.com/donavanyieh/Daily-Attention-UI/internal/models"
	"github.com/donavanyieh/Daily-Attention-UI/internal/queue"
	"github.com/donavanyieh/Daily-Attention-UI/internal/seed"
)

const (
	brokerWait   = 10 * time.Second
	topicTimeout = 10 * time.Second
	sendTimeout  = 10 * time.Second
)

// Notifier holds whichever side channels are configured. The zero value is a no-op.
type Notifier struct {
	component string
	cache     cache.PaperCache
	writer    queue.Writer
	closers   []func() error
	now       func() time.Time
}

// New wires the channels enabled in cfg. component prefixes log lines.
func New(ctx context.Context, cfg config.Config, component string) *Notifier {
	n := &Notifier{component: component, now: time.Now}

	if cfg.Redis.Addr != "" {
		c, err := cache.NewRedisPaperCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL, cfg.Redis.Prefix)
		if err != nil {
			logging.Errorf("[%s] feed cache disabled: %v", component, err)
		} else {
			n.cache = c
			n.closers = append(n.closers, c.Close)
		}
	}

	if len(cfg.Kafka.Brokers) > 0 {
		if w := connectKafka(ctx, cfg.Kafka, component); w != nil {
			n.writer = w
			n.closers = append(n.closers, w.Close)
		}
	}
	return n
}

// NewWith builds a Notifier over explicit channels. Either may be nil.
func NewWith(component string, c cache.PaperCache, w queue.Writer) *Notifier {
	return &Notifier{component: component, cache: c, writer: w, now: time.Now}
}

func connectKafka(ctx context.Context, cfg config.KafkaConfig, component string) *kafkago.Writer {
	waitCtx, cancel := context.WithTimeout(ctx, brokerWait)
	defer cancel()
	if err := kafka.WaitForBroker(waitCtx, cfg.Brokers); err != nil {
		logging.Errorf("[%s] seed events disabled: %v", component, err)
		return nil
	}

	ensureCtx, cancelEnsure := context.WithTimeout(ctx, topicTimeout)
	defer cancelEnsure()
	if err := kafka.EnsureTopic(ensureCtx, cfg.Brokers, cfg.Topic); err != nil {
		logging.Errorf("[%s] ensure topic warning: %v", component, err)
	}
	return kafka.NewWriter(cfg.Brokers, cfg.Topic)
}

// Seeded primes the feed cache with list and publishes a seeded event.
func (n *Notifier) Seeded(ctx context.Context, res seed.InitResult, list []models.Paper) {
	if n == nil {
		return
	}
	now := n.now().UTC()
	if n.cache != nil {
		cctx, cancel := context.WithTimeout(ctx, sendTimeout)
		err := n.cache.Prime(cctx, cache.Feed{Fingerprint: res.Fingerprint, Papers: list, SeededAt: now})
		cancel()
		if err != nil {
			logging.Errorf("[%s] prime feed cache: %v", n.component, err)
		} else {
			logging.Infof("[%s] feed cache primed with %d papers", n.component, len(list))
		}
	}
	n.publish(ctx, queue.SeedEvent{
		Type:        queue.EventSeeded,
		Database:    res.Path,
		Fingerprint: res.Fingerprint,
		Count:       res.Count,
		PaperIDs:    res.PaperIDs,
		OccurredAt:  now,
	})
}

// Cleared invalidates the feed cache and publishes a cleared event. Guard
// outcomes changed nothing and are not announced.
func (n *Notifier) Cleared(ctx context.Context, res seed.ClearResult) {
	if n == nil || res.Outcome != seed.Cleared {
		return
	}
	n.invalidate(ctx)
	n.publish(ctx, queue.SeedEvent{
		Type:       queue.EventCleared,
		Database:   res.Path,
		Count:      res.After,
		OccurredAt: n.now().UTC(),
	})
}

// Dropped invalidates the feed cache and publishes a dropped event when a table was removed.
func (n *Notifier) Dropped(ctx context.Context, res seed.DropResult) {
	if n == nil || !res.HadTable {
		return
	}
	n.invalidate(ctx)
	n.publish(ctx, queue.SeedEvent{
		Type:       queue.EventDropped,
		Database:   res.Path,
		OccurredAt: n.now().UTC(),
	})
}

func (n *Notifier) invalidate(ctx context.Context) {
	if n.cache == nil {
		return
	}
	cctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := n.cache.Invalidate(cctx); err != nil {
		logging.Errorf("[%s] invalidate feed cache: %v", n.component, err)
	}
}

func (n *Notifier) publish(ctx context.Context, ev queue.SeedEvent) {
	if n.writer == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := queue.PublishSeedEvent(pctx, n.writer, ev); err != nil {
		logging.Errorf("[%s] publish %s: %v", n.component, ev.Type, err)
		return
	}
	logging.Debugf("[%s] published %s", n.component, ev.Type)
}

// Close releases every configured channel.
func (n *Notifier) Close() {
	if n == nil {
		return
	}
	for _, c := range n.closers {
		if err := c(); err != nil {
			logging.Errorf("[%s] close: %v", n.component, err)
		}
	}
}
