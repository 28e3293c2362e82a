package ecs

// EventKind identifies one observable gameplay signal.
type EventKind int

const (
	EventLanded EventKind = iota + 1
	EventJumped
	EventDamaged
	EventDied
	EventWeaponChanged
	EventAmmoChanged
	EventReloadStarted
	EventReloadCompleted
	EventEmptyFire
	EventShotFired
	EventEnemyHit
	EventEnemyKilled
	EventPickupCollected
	EventScoreChanged
)

// Event is one bus notification. Entity is the subject's id, 0 when the
// event is global. Data carries a kind-specific payload (see the payload
// structs below); it may be nil.
type Event struct {
	Kind   EventKind
	Entity int
	Data   any
}

// AmmoPayload accompanies EventAmmoChanged.
type AmmoPayload struct {
	Current int
	Max     int
}

// WeaponPayload accompanies EventWeaponChanged and EventShotFired.
type WeaponPayload struct {
	Kind string
	Name string
}

// ScorePayload accompanies EventScoreChanged.
type ScorePayload struct {
	Score int
}

// Bus is a one-to-many, fire-and-forget notification registry. Dispatch is
// synchronous and in subscription order, so listeners observe state from the
// same tick that published the event. Publishing never reports
// listener success or failure back to the caller.
type Bus struct {
	subs map[EventKind][]func(Event)
	any  []func(Event)
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for one event kind.
func (b *Bus) Subscribe(kind EventKind, fn func(Event)) {
	if b == nil || fn == nil {
		return
	}
	if b.subs == nil {
		b.subs = make(map[EventKind][]func(Event))
	}
	b.subs[kind] = append(b.subs[kind], fn)
}

// SubscribeAll registers fn for every event kind.
func (b *Bus) SubscribeAll(fn func(Event)) {
	if b == nil || fn == nil {
		return
	}
	b.any = append(b.any, fn)
}

// Publish dispatches ev to all matching subscribers immediately.
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}
	for _, fn := range b.subs[ev.Kind] {
		fn(ev)
	}
	for _, fn := range b.any {
		fn(ev)
	}
}
