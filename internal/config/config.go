package config

import "image/color"

const (
	WindowWidth  = 1000
	WindowHeight = 1000
	WindowTitle  = "Fireworks - Space: Pause, H: HUD, Esc/Q: Quit"

	// Target ticks per second
	TPS = 60

	// Show parameters
	InitialFireworks = 2
	SpawnOutcomes    = 81
	SpawnMargin      = 100
	SpawnGrid        = 100

	// Physics
	GravityX     = 0.0
	GravityY     = 0.3
	SparkDrag    = 0.8
	ExplodeSpeed = -2.0 // rocket explodes once velocity.y reaches this

	// Rocket
	RocketSize     = 4
	RocketSpeedMin = 18
	RocketSpeedMax = 23

	// Sparks
	SparkMin         = 100
	SparkMax         = 200
	SparkSpeed       = 30.0
	SparkSizeMin     = 1
	SparkSizeMax     = 3
	SparkRadiusMin   = 15
	SparkRadiusStop  = 30
	SparkRadiusStep  = 5
	SparkJitterX     = 20.0
	SparkJitterYMin  = 1
	SparkJitterYMax  = 8
	SparkJitterScale = 100.0

	// Decay and trail history
	DecayGraceAge   = 10
	DecayLateAge    = 50
	DecayEarlyOdds  = 30
	DecayLateOdds   = 5
	HistoryLength   = 10
	HistorySentinel = -10
	TrailCount      = 5
	CloseOffset     = 1
	FarOffset       = 5

	// Audio
	ExplosionChannel = 0
	LiftoffChannel   = 1
	AudioChannels    = 2
	SampleRate       = 44100
)

var (
	Background  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	RocketColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	TrailWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Unlit fills the two secondary explosion slots.
	Unlit       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// TrailColors are the rocket trail colours, nearest slot first.
var TrailColors = [TrailCount]color.RGBA{
	{R: 249, G: 199, B: 79, A: 255},
	{R: 249, G: 132, B: 74, A: 255},
	{R: 248, G: 150, B: 30, A: 255},
	{R: 243, G: 114, B: 44, A: 255},
	{R: 249, G: 65, B: 68, A: 255},
}

// ExplosionHues is the set an explosion draws its primary colour from.
var ExplosionHues = [9]color.RGBA{
	{R: 255, G: 21, B: 22, A: 255},
	{R: 253, G: 148, B: 21, A: 255},
	{R: 254, G: 246, B: 23, A: 255},
	{R: 249, G: 132, B: 74, A: 255},
	{R: 62, G: 232, B: 21, A: 255},
	{R: 22, G: 160, B: 232, A: 255},
	{R: 150, G: 20, B: 230, A: 255},
	{R: 142, G: 134, B: 147, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}
