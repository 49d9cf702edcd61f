package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display"`
	Physics  PhysicsSettings `json:"physics"`
	Movement MovementConfig  `json:"movement"`
	Jump     JumpConfig      `json:"jump"`
	Spell    SpellConfig     `json:"spell"`
	Logging  LoggingConfig   `json:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
	TileSize     int     `json:"tileSize"`
}

// MovementConfig shapes walking. Top speed comes from the moveSpeed stat;
// ground acceleration and braking are scaled by the surface material.
type MovementConfig struct {
	Acceleration    float64 `json:"acceleration"`
	Deceleration    float64 `json:"deceleration"`
	AirControl      float64 `json:"airControl"`
	TurnaroundBoost float64 `json:"turnaroundBoost"`
}

// JumpConfig shapes jumping. Launch speed comes from the jumpPower stat.
type JumpConfig struct {
	VariableJumpMultiplier float64 `json:"variableJumpMultiplier"`
	JumpBuffer             float64 `json:"jumpBuffer"`
	StaminaCost            float64 `json:"staminaCost"`
}

type SpellConfig struct {
	CastCooldown float64 `json:"castCooldown"`
}

type LoggingConfig struct {
	Level string `json:"level"`
}
