package player

import (
	"fmt"

	"atlas-engine/internal/scene"
)

// Enemy AI tunables (shooter gameplay).
const (
	enemySpeed       = 0.04 // units per frame toward the player
	enemyMinRange    = 0.5
	enemyMaxRange    = 20.0
	enemyAttackRange = 1.5
	enemyDamage      = 5.0
	attackCooldown   = 30 // frames between enemy hits
	enemyFloorY      = 1.0
)

// Vars reads and writes script variables (health, ammo, score) shared with
// the interpreter.
type Vars interface {
	Number(name string, fallback float64) float64
	SetNumber(name string, value float64)
}

// Logf receives system messages with a severity of info, warning, error or
// success.
type Logf func(level, msg string)

// EnemyAI chases the player with every NPC and applies touch damage on a
// cooldown. Active only in game mode with shooter gameplay and live controls.
// Returns false when the player's health reached zero (game over) so the
// caller can disable controls.
type EnemyAI struct {
	cooldown int
}

// Update runs one AI frame. vars carries health/score/kills; log may be nil.
func (ai *EnemyAI) Update(sc *scene.Scene, c *Controller, vars Vars, log Logf) bool {
	player, ok := sc.PlayerShape()
	if !ok || sc.Mode != scene.ModeGame || !c.Enabled || sc.Gameplay != scene.GameplayShooter {
		return true
	}
	if ai.cooldown > 0 {
		ai.cooldown--
	}

	for _, h := range sc.NPCs() {
		npc, ok := sc.Get(h)
		if !ok {
			continue
		}
		delta := player.Position.Sub(npc.Position)
		dist := delta.Length()

		if dist > enemyMinRange && dist < enemyMaxRange {
			step := delta.Scale(enemySpeed / dist)
			npc.Position.X += step.X
			npc.Position.Z += step.Z
			npc.Position.Y = enemyFloorY
		}

		if dist < enemyAttackRange && ai.cooldown == 0 && vars != nil {
			health := vars.Number("health", 100) - enemyDamage
			if health < 0 {
				health = 0
			}
			vars.SetNumber("health", health)
			ai.cooldown = attackCooldown
			if log != nil {
				log("warning", fmt.Sprintf("Enemy hit! Health: %.0f", health))
			}
			if health <= 0 {
				if log != nil {
					log("error", "GAME OVER!")
					log("info", fmt.Sprintf("Final score: %.0f, kills: %.0f",
						vars.Number("score", 0), vars.Number("kills", 0)))
				}
				c.Enabled = false
				return false
			}
		}
	}
	return true
}
