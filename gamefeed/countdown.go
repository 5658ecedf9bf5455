package gamefeed

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/gameday/models"
)

// Countdown splits the time left until kickoff into whole days, hours,
// minutes and seconds. It is zero once kickoff has passed.
func Countdown(now, kickoff time.Time) models.Countdown {
	d := kickoff.Sub(now)
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return models.Countdown{
		Days:    secs / 86400,
		Hours:   secs / 3600 % 24,
		Minutes: secs / 60 % 60,
		Seconds: secs % 60,
	}
}

// Pregame is the snapshot served before kickoff. It needs no upstream data.
func Pregame(ev models.Event, now time.Time) models.GameSnapshot {
	cd := Countdown(now, ev.Kickoff)
	kickoff := ev.Kickoff
	return models.GameSnapshot{
		GameStarted: false,
		EventID:     ev.GameID,
		Status:      models.StatusPregame,
		Countdown:   &cd,
		KickoffAt:   &kickoff,
		KickoffIn:   humanize.RelTime(ev.Kickoff, now, "ago", "from now"),
	}
}
