// Package config centralizes all tunable game parameters.
package config

import "time"

// Playfield in logical pixels. The HUD band occupies the top HUDHeight rows
// and is outside the playable area.
const (
	ScreenWidth  = 350
	ScreenHeight = 390
	HUDHeight    = 40
)

// Head start position (center).
const (
	HeadStartX = ScreenWidth / 2
	HeadStartY = ScreenHeight/2 + HUDHeight
)

// Entity sizes (square side length).
const (
	HeadSize   = 20
	BodySize   = 20
	EdibleSize = 10
)

// Movement
const (
	HeadSpeed = 3 // Pixels per tick
)

// Edible spawning
const (
	EdibleTimerMin = 100 // Ticks, inclusive
	EdibleTimerMax = 170 // Ticks, inclusive

	// Spawn margins keep the edible center inside the playfield.
	EdibleMarginSide   = 10
	EdibleMarginBottom = 10
	EdibleMarginTop    = 50
)

// Body
const (
	BodyBaseLifespan     = 15 // Ticks at score 0
	BodyLifespanPerPoint = 15 // Extra ticks per point scored
	BodyInvincibility    = 15 // Ticks a new segment cannot cause a loss
)

// Simulation tick rate
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Presentation
const (
	BlinkInterval = 800 * time.Millisecond
	Caption       = "Snake"
)

// Terminal render area limits (columns/rows). Larger terminals get a
// centered render area with a border.
const (
	MaxTermWidth  = 140
	MaxTermHeight = 70
)

// Leaderboard
const (
	TopScoresCount    = 5
	MaxUsernameLength = 16
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
