package core

// Color is a semantic palette slot for a screen cell. The platform maps each
// slot to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorShip
	ColorShipHurt
	ColorProjectile
	ColorAsteroid
	ColorEnemy
	ColorWeapon
	ColorHealth
	ColorExplosion
	ColorExplosionHot
	ColorStarDim
	ColorStarBright
	ColorHUD
	ColorHUDAlert
	ColorBoosted
	ColorOverlay
)
