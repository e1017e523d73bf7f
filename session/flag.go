package session

import (
	"context"

	"github.com/sirupsen/logrus"
)

const (
	// AudioFlagKey marks that the next page should try to start its track
	AudioFlagKey = "greeting.playAudio"
	flagSet      = "1"
)

// MarkAudioPending sets the flag; storage failures are swallowed
func MarkAudioPending(ctx context.Context, store Store) {
	if store == nil {
		return
	}
	if err := store.Set(ctx, AudioFlagKey, flagSet); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "MarkAudioPending",
			"error":    err,
		}).Debug("Audio flag not stored")
	}
}

// ConsumeAudioPending reads and clears the flag; true at most once per mark
func ConsumeAudioPending(ctx context.Context, store Store) bool {
	if store == nil {
		return false
	}
	v, ok, err := store.Get(ctx, AudioFlagKey)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "ConsumeAudioPending",
			"error":    err,
		}).Debug("Audio flag unreadable")
		return false
	}
	if !ok {
		return false
	}
	if err := store.Delete(ctx, AudioFlagKey); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "ConsumeAudioPending",
			"error":    err,
		}).Debug("Audio flag not cleared")
	}
	return v == flagSet
}
