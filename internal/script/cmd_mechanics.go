package script

import "strings"

func init() {
	register(cmdScore, "score")
	register(cmdHighscore, "highscore")
	register(cmdLives, "lives")
	register(cmdGameOver, "gameover")
	register(cmdWin, "win", "victory")
	register(cmdLose, "lose", "defeat")
	register(cmdCheckpoint, "checkpoint")
	register(cmdRespawn, "respawn")
	register(announce("⭐ Power-up collected!"), "powerup")
	register(announce("✨ Item picked up!"), "pickup")
	register(cmdCoin, "coin")
	register(cmdGem, "gem")
	register(announce("🔑 Key obtained!"), "key")
	register(announce("🚪 Door placed"), "door")
	register(announce("⚡ Trigger placed"), "trigger")
	register(announce("📍 Zone defined"), "zone")
	register(announce("⭕ Area defined"), "area")
	register(announce("👹 Enemy spawned!"), "spawn")
	register(cmdLock, "lock")
	register(cmdUnlock, "unlock")
	register(cmdWave, "wave")
}

func cmdScore(i *Interpreter, stmt string) {
	args := rest(stmt)
	op := strings.ToLower(firstWord(args))
	src := rest(args)
	if op != "add" && op != "set" {
		op, src = "add", args
	}
	n, ok := asNumber(i.Eval(src))
	if !ok {
		return
	}
	if op == "add" {
		i.addNum("score", n, 0)
	} else {
		i.Variables["score"] = n
	}
	i.sayf("💯 Score: %s", Format(i.Variables["score"]))
}

func cmdHighscore(i *Interpreter, stmt string) {
	score := i.Number("score", 0)
	if score > i.Number("highscore", 0) {
		i.Variables["highscore"] = score
		i.sayf("🏆 NEW HIGH SCORE: %s!", Format(score))
		return
	}
	i.sayf("🏆 High score: %s", Format(i.Number("highscore", 0)))
}

func cmdLives(i *Interpreter, stmt string) {
	args := rest(stmt)
	op := strings.ToLower(firstWord(args))
	src := rest(args)
	if op != "add" && op != "subtract" && op != "set" {
		op, src = "set", args
	}
	n, ok := asNumber(i.Eval(src))
	if !ok {
		return
	}
	switch op {
	case "add":
		i.addNum("lives", n, 3)
	case "subtract":
		i.addNum("lives", -n, 3)
	default:
		i.Variables["lives"] = n
	}
	i.sayf("💔 Lives: %s", Format(i.Variables["lives"]))
}

func cmdGameOver(i *Interpreter, stmt string) {
	i.Variables["game_state"] = "over"
	i.say("GAME OVER!")
}

func cmdWin(i *Interpreter, stmt string) {
	i.Variables["game_state"] = "won"
	i.say("🎉 YOU WIN!")
}

func cmdLose(i *Interpreter, stmt string) {
	i.Variables["game_state"] = "lost"
	i.say("💀 YOU LOSE!")
}

func cmdCheckpoint(i *Interpreter, stmt string) {
	if xy, ok := i.coords(dropWord(rest(stmt), "at"), 2); ok {
		i.Variables["checkpoint_x"] = xy[0]
		i.Variables["checkpoint_y"] = xy[1]
		i.sayf("🚩 Checkpoint at (%s, %s)", Format(xy[0]), Format(xy[1]))
	}
}

func cmdRespawn(i *Interpreter, stmt string) {
	i.Variables["player_x"] = i.Number("checkpoint_x", 0)
	i.Variables["player_y"] = i.Number("checkpoint_y", 0)
	i.say("🔄 Respawned at checkpoint")
}

func cmdCoin(i *Interpreter, stmt string) {
	i.addNum("coins", 1, 0)
	i.sayf("🪙 Coins: %s", Format(i.Variables["coins"]))
}

func cmdGem(i *Interpreter, stmt string) {
	i.addNum("gems", 1, 0)
	i.sayf("💎 Gems: %s", Format(i.Variables["gems"]))
}

func cmdLock(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok {
		i.Variables[strings.ToLower(name)+"_locked"] = true
		i.sayf("🔒 %s locked", name)
	}
}

func cmdUnlock(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok {
		i.Variables[strings.ToLower(name)+"_locked"] = false
		i.sayf("🔓 %s unlocked", name)
	}
}

func cmdWave(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok {
		i.Variables["current_wave"] = n
		i.sayf("🌊 WAVE %s!", Format(n))
	}
}
