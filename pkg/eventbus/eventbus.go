package eventbus

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/roffe/txgraph/pkg/debug"
)

var ErrFull = errors.New("publish channel full")

type Config struct {
	IncomingBuffer    int
	SubscribeBuffer   int
	UnsubscribeBuffer int
	ChannelBuffer     int
	CacheTTL          time.Duration
}

var DefaultConfig = &Config{
	IncomingBuffer:    1000,
	SubscribeBuffer:   100,
	UnsubscribeBuffer: 100,
	ChannelBuffer:     10,
	CacheTTL:          time.Minute,
}

// Readout is the value of one series at the pointer position.
type Readout struct {
	Topic string
	Value float64
}

// Controller fans readouts out to subscribers. The last value per topic is
// cached so late subscribers start with a value.
type Controller struct {
	subs     map[string][]chan float64
	incoming chan Readout
	sub      chan newSub
	unsub    chan chan float64
	cache    *ttlcache.Cache[string, float64]
	bufSize  int

	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}
}

type newSub struct {
	topic string
	resp  chan float64
}

func New(cfg *Config) *Controller {
	if cfg == nil {
		cfg = DefaultConfig
	}
	c := &Controller{
		subs:     make(map[string][]chan float64),
		incoming: make(chan Readout, cfg.IncomingBuffer),
		sub:      make(chan newSub, cfg.SubscribeBuffer),
		unsub:    make(chan chan float64, cfg.UnsubscribeBuffer),
		cache:    ttlcache.New[string, float64](ttlcache.WithTTL[string, float64](cfg.CacheTTL)),
		bufSize:  cfg.ChannelBuffer,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go c.run()
	return c
}

func (e *Controller) run() {
	defer close(e.done)
	for {
		select {
		case <-e.quit:
			e.cleanup()
			return
		case msg := <-e.incoming:
			e.handleReadout(msg)
		case sub := <-e.sub:
			e.handleSubscription(sub)
		case unsub := <-e.unsub:
			e.handleUnsubscription(unsub)
		}
	}
}

func (e *Controller) handleReadout(msg Readout) {
	e.cache.Set(msg.Topic, msg.Value, ttlcache.DefaultTTL)
	for _, sub := range e.subs[msg.Topic] {
		select {
		case sub <- msg.Value:
		default:
			// a slow label only misses intermediate readouts
			debug.Logf("readout channel full for %s", msg.Topic)
		}
	}
}

func (e *Controller) handleSubscription(sub newSub) {
	e.subs[sub.topic] = append(e.subs[sub.topic], sub.resp)
	if item := e.cache.Get(sub.topic); item != nil {
		select {
		case sub.resp <- item.Value():
		default:
			log.Printf("cache hit but channel full for %s", sub.topic)
		}
	}
}

func (e *Controller) handleUnsubscription(unsub chan float64) {
	for topic, subs := range e.subs {
		for i, sub := range subs {
			if sub != unsub {
				continue
			}
			subs = append(subs[:i], subs[i+1:]...)
			if len(subs) == 0 {
				delete(e.subs, topic)
			} else {
				e.subs[topic] = subs
			}
			close(unsub)
			return
		}
	}
}

// Close stops the dispatcher and closes every subscriber channel.
func (e *Controller) Close() {
	e.closeOnce.Do(func() {
		close(e.quit)
	})
	<-e.done
}

func (e *Controller) cleanup() {
	e.cache.DeleteAll()
	for topic, subs := range e.subs {
		for _, sub := range subs {
			close(sub)
		}
		delete(e.subs, topic)
	}
}

func (e *Controller) Publish(topic string, value float64) error {
	select {
	case e.incoming <- Readout{Topic: topic, Value: value}:
		return nil
	default:
		return fmt.Errorf("%s: %w", topic, ErrFull)
	}
}

// SubscribeFunc calls fn with every readout on topic until cancel is called.
func (e *Controller) SubscribeFunc(topic string, fn func(float64)) (cancel func()) {
	respChan := e.Subscribe(topic)
	go func() {
		for v := range respChan {
			debug.Do(func() {
				fn(v)
			})
		}
	}()
	return func() {
		e.Unsubscribe(respChan)
	}
}

func (e *Controller) Subscribe(topic string) chan float64 {
	respChan := make(chan float64, e.bufSize)
	e.sub <- newSub{topic: topic, resp: respChan}
	return respChan
}

func (e *Controller) Unsubscribe(channel chan float64) {
	select {
	case e.unsub <- channel:
	case <-e.quit:
	}
}

// Values returns the cached last readout of every topic.
func (e *Controller) Values() map[string]float64 {
	values := make(map[string]float64)
	for k, v := range e.cache.Items() {
		values[k] = v.Value()
	}
	return values
}
