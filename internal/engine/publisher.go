package engine

// Outbound event names. The full snapshot goes out as gameStateUpdate after
// every mutation; adminStatsUpdate carries only the statistics subrecord.
const (
	EventGameState    = "gameStateUpdate"
	EventAdminStats   = "adminStatsUpdate"
	EventNotification = "notification"
	EventPlaySound    = "playSound"
)

// Sound cues, advisory UI hints only.
const (
	SoundGunshot    = "gunshot"
	SoundCountdown  = "countdown"
	SoundCheer      = "cheer"
	SoundEliminated = "eliminated"
	SoundCorrect    = "correct"
)

// Publisher is the broadcast capability the engine depends on. Delivery is
// fire-and-forget: implementations must not block the caller, and failures
// never surface back into the engine.
type Publisher interface {
	Publish(event string, payload any)
	PublishTo(id, event string, payload any)
}
