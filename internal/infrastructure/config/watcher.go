package config

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/pagehost/internal/logging"
)

// reloadDelay coalesces the bursts of write events editors emit on save.
const reloadDelay = 150 * time.Millisecond

// Watch reloads the config file whenever it changes on disk. An edit that
// fails to parse or validate is logged and the previous config stays in
// effect. Calling Watch again is a no-op.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return nil
	}
	m.watching = true

	log := logging.FromContext(logging.WithComponent(ctx, "config"))
	var timer *time.Timer
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(reloadDelay, func() {
			if err := m.applyChange(); err != nil {
				log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
				return
			}
			log.Info().Str("file", m.GetConfigFile()).Msg("config reloaded")
		})
	})
	m.viper.WatchConfig()
	return nil
}

// OnConfigChange registers fn to receive a copy of every reloaded config.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, fn)
	m.mu.Unlock()
}

// applyChange re-reads the file and hands the result to the callbacks
// outside the lock.
func (m *Manager) applyChange() error {
	m.mu.Lock()
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return err
	}
	cfg, err := m.build()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.config = cfg
	snapshot := *cfg
	callbacks := append(([]func(*Config))(nil), m.callbacks...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		c := snapshot
		fn(&c)
	}
	return nil
}
