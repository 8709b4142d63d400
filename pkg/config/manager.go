package config

import (
	"fmt"
	"sync"
	"sync/atomic"

	"EvoEngine/pkg/logger"
)

// Manager owns the configuration snapshot for the process lifetime. It is
// built exactly once; configuration-content problems never fail the build —
// they land in the snapshot's diagnostics and the per-section validity flags,
// and each consumer decides how fatal an invalid section is for itself.
type Manager struct {
	snap *Snapshot
}

// Option customizes Manager construction.
type Option func(*options)

type options struct {
	overridePath string
	log          *logger.Logger
}

// WithOverridePath points the Manager at an override file other than
// DefaultOverridePath.
func WithOverridePath(path string) Option {
	return func(o *options) { o.overridePath = path }
}

// WithLogger routes build-time warnings and errors to l instead of discarding
// them.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// builds counts completed snapshot constructions; tests use it to prove the
// singleton constructs exactly once under concurrent first access.
var builds atomic.Int32

var (
	instance     *Manager
	instanceOnce sync.Once
)

// Instance returns the process-wide Manager, constructing it on first call.
// Concurrent first calls are serialized: construction runs exactly once and
// every caller observes the same completed instance. Options are honored only
// by the constructing call; later calls return the existing instance
// unchanged.
func Instance(opts ...Option) *Manager {
	instanceOnce.Do(func() {
		instance = New(opts...)
	})
	return instance
}

// New builds a Manager immediately and synchronously. The DI root uses it to
// own the configuration handle explicitly; tests use it for isolated
// snapshots.
func New(opts ...Option) *Manager {
	o := options{
		overridePath: DefaultOverridePath,
		log:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{snap: buildSnapshot(&o)}
}

// Snapshot returns the frozen configuration. Calling it on a Manager that was
// never constructed is a programming error and panics; every Manager obtained
// from New or Instance is already built.
func (m *Manager) Snapshot() *Snapshot {
	if m == nil || m.snap == nil {
		panic("config: Snapshot on an unconstructed Manager")
	}
	return m.snap
}

// buildSnapshot runs the full construction sequence: env-derived sections with
// defaults, override overlay for the research block, validation, diagnostics
// aggregation. It always produces a Ready snapshot.
func buildSnapshot(o *options) *Snapshot {
	var diags []string
	record := func(section string, err error) {
		if err != nil {
			diags = append(diags, fmt.Sprintf("%s: %v", section, err))
		}
	}

	firebase, err := sectionFromEnv[FirebaseConfig]()
	record("firebase", err)
	telegram, err := sectionFromEnv[TelegramConfig]()
	record("telegram", err)
	research, err := sectionFromEnv[ResearchConfig]()
	record("research", err)
	exchanges, err := exchangesFromEnv()
	record("exchanges", err)

	diags = append(diags, loadOverrides(o.overridePath, &research)...)

	snap := &Snapshot{
		Firebase:  firebase,
		Telegram:  telegram,
		Research:  research,
		Exchanges: exchanges,
		Status: Status{
			Firebase:  checkFirebase(firebase),
			Telegram:  checkTelegram(telegram),
			Research:  checkResearch(research),
			Exchanges: checkExchanges(exchanges),
		},
	}
	snap.Valid = snap.Status.Firebase.Valid && snap.Status.Research.Valid

	diags = append(diags, snap.Status.Firebase.Diagnostics...)
	diags = append(diags, snap.Status.Telegram.Diagnostics...)
	diags = append(diags, snap.Status.Research.Diagnostics...)
	diags = append(diags, snap.Status.Exchanges.Diagnostics...)
	snap.Diagnostics = diags

	logOutcome(o.log, snap)
	builds.Add(1)
	return snap
}

func logOutcome(log *logger.Logger, snap *Snapshot) {
	if !snap.Status.Firebase.Valid {
		log.Error("firebase configuration invalid",
			logger.Strings("diagnostics", snap.Status.Firebase.Diagnostics))
	}
	if !snap.Status.Research.Valid {
		log.Error("research configuration invalid",
			logger.Strings("diagnostics", snap.Status.Research.Diagnostics))
	} else if len(snap.Status.Research.Diagnostics) > 0 {
		log.Warn("research configuration warnings",
			logger.Strings("diagnostics", snap.Status.Research.Diagnostics))
	}
	if !snap.Status.Telegram.Valid {
		log.Warn("telegram not configured, notifications disabled",
			logger.Strings("diagnostics", snap.Status.Telegram.Diagnostics))
	}
	if len(snap.Diagnostics) > 0 {
		log.Debug("configuration built with diagnostics",
			logger.Int("count", len(snap.Diagnostics)))
	} else {
		log.Debug("configuration built")
	}
}
