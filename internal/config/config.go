// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.1
	MobileWidth  = 768 // viewports this narrow or narrower use the mobile profile

	// Camera
	CameraFovY      = 75.0
	CameraNear      = 0.1
	CameraFar       = 1000.0
	CameraStartY    = 5.0
	CameraStartZ    = 30.0
	CameraMinZ      = 10.0
	CameraMaxZ      = 50.0
	LookSmoothing   = 0.05  // per tick, not delta-scaled
	LookSensitivity = 0.001 // radians per pixel of pointer offset
	WheelZoomScale  = 0.01
	PinchZoomScale  = 0.05

	// Field
	FieldSize     = 100.0
	FloorY        = -10.0
	CeilingY      = 50.0
	GridDivisions = 50

	// Bubbles
	BubbleCountDesktop = 200
	BubbleCountMobile  = 50
	BubbleMinScale     = 0.1
	BubbleMaxScale     = 0.6
	BubbleMinSpeed     = 0.05
	BubbleMaxSpeed     = 0.15
	BubbleRiseFactor   = 5.0
	BubbleDriftFreq    = 0.01
	BubbleDriftAmp     = 0.05
	BubbleRadius       = 1.0 // unit sphere, scaled per instance
	BubbleRespawnMs    = 500

	// Camera props
	PropCountDesktop = 5
	PropCountMobile  = 3
	PropSpreadXZ     = 40.0
	PropSpreadY      = 20.0
	PropBaseY        = 10.0
	PropBobHeight    = 2.0
	PropBobFreq      = 0.01
	PropSpinRatioY   = 1.3
	HighlightBase    = 0.1
	HighlightActive  = 0.5

	// Particles
	ParticleCountDesktop = 2000
	ParticleCountMobile  = 1000
	ParticleSpread       = 100.0
	ParticleSpinX        = 0.0001
	ParticleSpinY        = 0.0002

	// Environment shapes
	ShapeSpinX = 0.01 * 0.3
	ShapeSpinY = 0.01 * 0.5

	// Explosions
	ExplosionParticles = 30
	ExplosionSpread    = 2.0
	ExplosionFade      = 0.02
	ExplosionJitter    = 0.5

	// HUD
	FPSReportEvery     = 30
	LoadingStepMs      = 200
	LoadingMaxStep     = 20.0
	LoadingHoldMs      = 500
	InfoCardShowMs     = 1000
	InfoCardHideMs     = 5000
	CursorOffset       = 10
	CursorFollowOffset = 20
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	NeonRed         = color.RGBA{255, 0, 0, 255}
	DarkRed         = color.RGBA{51, 0, 0, 255}
	GridMajorColor  = color.RGBA{255, 0, 0, 255}
	GridMinorColor  = color.RGBA{34, 0, 0, 255}
	PropBodyColor   = color.RGBA{26, 26, 26, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	FogNear         = 1.0
	FogFar          = 100.0
)
