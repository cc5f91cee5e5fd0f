package script

import "strings"

func init() {
	register(cmdXP, "xp", "experience")
	register(cmdLevel, "level")
	register(cmdLevelUp, "levelup")
	register(cmdStat, "stat")
	register(statVerb("player_mana", 100, "🔮", "Mana"), "mana")
	register(statVerb("player_stamina", 100, "🏃", "Stamina"), "stamina")
	register(statVerb("player_armor", 0, "🛡️", "Armor"), "armor")
	register(statVerb("player_attack", 10, "⚔️", "Attack"), "attack")
	register(statVerb("player_defense", 10, "🛡️", "Defense"), "defense")
	register(cmdInventory, "inventory")
	register(cmdEquip, "equip")
	register(cmdUnequip, "unequip")
	register(cmdAddItem, "additem")
	register(cmdRemoveItem, "removeitem", "dropitem")
	register(cmdHasItem, "hasitem")
	register(cmdUseItem, "useitem")
	register(cmdQuest, "quest")
	register(cmdCompleteQuest, "completequest")
	register(cmdObjective, "objective")
	register(cmdReward, "reward")
	register(cmdEnemy, "enemy")
	register(cmdBattle, "battle")
	register(cmdHit, "hit")
	register(cmdCritical, "critical")
	register(announce("💨 Attack dodged!"), "dodge")
	register(announce("🛡️ Attack blocked!"), "block")
	register(announce("⚔️ Attack parried!"), "parry")
	register(announce("💫 Target stunned!"), "stun")
	register(announce("☠️ Poison applied!"), "poison")
	register(announce("🔥 Burning!"), "burn")
	register(announce("❄️ Frozen!"), "freeze")
	register(cmdSpell, "spell")
	register(cmdCast, "cast")
	register(cmdFireball, "fireball")
	register(cmdLightning, "lightning")
	register(cmdHeal, "heal")
	register(cmdShield, "shield")
	register(cmdTeleport, "teleport")
	register(cmdSummon, "summon")
	register(cmdEnchant, "enchant")
	register(cmdSkill, "skill")
	register(cmdAbility, "ability")
	register(cmdCooldown, "cooldown")
	register(cmdBuff, "buff")
	register(cmdDebuff, "debuff")
}

// statVerb builds a handler for add/subtract/set statements against a single
// numeric variable with a starting value.
func statVerb(varName string, base float64, emoji, label string) handler {
	return func(i *Interpreter, stmt string) {
		args := rest(stmt)
		op := strings.ToLower(firstWord(args))
		amountSrc := rest(args)
		if op != "add" && op != "subtract" && op != "set" {
			op, amountSrc = "set", args
		}
		n, ok := asNumber(i.Eval(amountSrc))
		if !ok {
			return
		}
		switch op {
		case "add":
			i.addNum(varName, n, base)
		case "subtract":
			i.addNum(varName, -n, base)
		default:
			i.Variables[varName] = n
		}
		i.sayf("%s %s: %s", emoji, label, Format(i.Variables[varName]))
	}
}

func cmdXP(i *Interpreter, stmt string) {
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
		i.addNum("player_xp", n, 0)
	} else {
		i.Variables["player_xp"] = n
	}
	i.sayf("⭐ XP: %s", Format(i.Variables["player_xp"]))
}

func cmdLevel(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok {
		i.Variables["player_level"] = n
		i.sayf("📈 Level: %s", Format(n))
	}
}

func cmdLevelUp(i *Interpreter, stmt string) {
	i.addNum("player_level", 1, 1)
	i.sayf("🎉 LEVEL UP! Now level %s", Format(i.Variables["player_level"]))
}

func cmdStat(i *Interpreter, stmt string) {
	name, vs, ok := cutWord(" "+rest(stmt), "is")
	if !ok {
		name, vs, ok = identifier(rest(stmt))
		if !ok {
			return
		}
	}
	if n, nok := asNumber(i.Eval(vs)); nok {
		i.Variables["stat_"+strings.ToLower(name)] = n
		i.sayf("📊 %s: %s", name, Format(n))
	}
}

func playerItems(i *Interpreter) []Value {
	items, _ := i.Variables["player_inventory"].([]Value)
	return items
}

func cmdInventory(i *Interpreter, stmt string) {
	items := playerItems(i)
	if len(items) == 0 {
		i.say("🎒 Inventory is empty")
		return
	}
	names := make([]string, len(items))
	for n, it := range items {
		names[n] = Format(it)
	}
	i.say("🎒 Inventory: " + strings.Join(names, ", "))
}

func cmdEquip(i *Interpreter, stmt string) {
	item := Format(i.Eval(rest(stmt)))
	equipped := playerEquipped(i)
	i.Variables["equipped_items"] = append(equipped, item)
	i.sayf("⚔️ Equipped %s", item)
}

func cmdUnequip(i *Interpreter, stmt string) {
	item := Format(i.Eval(rest(stmt)))
	equipped := playerEquipped(i)
	for n, e := range equipped {
		if Format(e) == item {
			i.Variables["equipped_items"] = append(equipped[:n:n], equipped[n+1:]...)
			i.sayf("📤 Unequipped %s", item)
			return
		}
	}
	i.logf("warning", "⚠️ %s is not equipped", item)
}

func playerEquipped(i *Interpreter) []Value {
	items, _ := i.Variables["equipped_items"].([]Value)
	return items
}

func cmdAddItem(i *Interpreter, stmt string) {
	item := Format(i.Eval(rest(stmt)))
	i.Variables["player_inventory"] = append(playerItems(i), item)
	i.sayf("✨ Got %s!", item)
}

func cmdRemoveItem(i *Interpreter, stmt string) {
	item := Format(i.Eval(rest(stmt)))
	items := playerItems(i)
	for n, it := range items {
		if Format(it) == item {
			i.Variables["player_inventory"] = append(items[:n:n], items[n+1:]...)
			i.sayf("📦 Removed %s", item)
			return
		}
	}
	i.logf("warning", "⚠️ No %s in inventory", item)
}

func cmdHasItem(i *Interpreter, stmt string) {
	item := Format(i.Eval(rest(stmt)))
	found := false
	for _, it := range playerItems(i) {
		if Format(it) == item {
			found = true
			break
		}
	}
	i.Variables["_hasitem"] = found
}

func cmdUseItem(i *Interpreter, stmt string) {
	item := Format(i.Eval(rest(stmt)))
	items := playerItems(i)
	for n, it := range items {
		if Format(it) == item {
			i.Variables["player_inventory"] = append(items[:n:n], items[n+1:]...)
			i.sayf("💫 Used %s", item)
			return
		}
	}
	i.logf("warning", "⚠️ No %s in inventory", item)
}

func cmdQuest(i *Interpreter, stmt string) {
	name, _, ok := quoted(rest(stmt))
	if !ok {
		name = rest(stmt)
	}
	quests, _ := i.Variables["active_quests"].([]Value)
	i.Variables["active_quests"] = append(quests, name)
	i.sayf("📜 New quest: %s", name)
}

func cmdCompleteQuest(i *Interpreter, stmt string) {
	name, _, ok := quoted(rest(stmt))
	if !ok {
		name = rest(stmt)
	}
	quests, _ := i.Variables["active_quests"].([]Value)
	for n, q := range quests {
		if Format(q) == name {
			i.Variables["active_quests"] = append(quests[:n:n], quests[n+1:]...)
			break
		}
	}
	i.sayf("✅ Quest complete: %s", name)
}

func cmdObjective(i *Interpreter, stmt string) {
	text, _, ok := quoted(rest(stmt))
	if !ok {
		text = rest(stmt)
	}
	i.sayf("🎯 Objective: %s", text)
}

func cmdReward(i *Interpreter, stmt string) {
	i.sayf("🎁 Reward: %s", Format(i.Eval(rest(stmt))))
}

// cmdEnemy declares an enemy: enemy "name" health H attack A.
func cmdEnemy(i *Interpreter, stmt string) {
	name, after, ok := quoted(rest(stmt))
	if !ok {
		name = firstWord(rest(stmt))
		after = rest(rest(stmt))
	}
	key := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	health, attack := 100.0, 10.0
	if _, hs, hok := cutWord(" "+after, "health"); hok {
		if n, nok := asNumber(i.Eval(firstWord(hs))); nok {
			health = n
		}
	}
	if _, as, aok := cutWord(" "+after, "attack"); aok {
		if n, nok := asNumber(i.Eval(firstWord(as))); nok {
			attack = n
		}
	}
	i.Variables["enemy_"+key+"_health"] = health
	i.Variables["enemy_"+key+"_attack"] = attack
	i.sayf("👹 %s appears! (HP: %s, ATK: %s)", name, Format(health), Format(attack))
}

func cmdBattle(i *Interpreter, stmt string) {
	i.Variables["in_battle"] = true
	i.say("⚔️ Battle started!")
}

func cmdHit(i *Interpreter, stmt string) {
	target, ds, ok := cutWord(" "+rest(stmt), "for")
	if !ok {
		target = rest(stmt)
		ds = "10"
	}
	damage, _ := asNumber(i.Eval(ds))
	key := "enemy_" + strings.ToLower(strings.Trim(target, "\"'")) + "_health"
	if _, exists := i.Variables[key]; exists {
		i.addNum(key, -damage, 0)
		i.sayf("💥 Hit %s for %s damage! (HP: %s)", target, Format(damage), Format(i.Variables[key]))
	} else {
		i.sayf("💥 Hit %s for %s damage!", target, Format(damage))
	}
}

func cmdCritical(i *Interpreter, stmt string) {
	i.Variables["last_critical"] = true
	i.say("💥 CRITICAL HIT!")
}

func cmdSpell(i *Interpreter, stmt string) {
	name, after, ok := quoted(rest(stmt))
	if !ok {
		return
	}
	cost := 10.0
	if _, cs, cok := cutWord(" "+after, "cost"); cok {
		if n, nok := asNumber(i.Eval(firstWord(cs))); nok {
			cost = n
		}
	}
	key := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	i.Variables["spell_"+key+"_cost"] = cost
	i.sayf("📖 Learned spell: %s (cost %s mana)", name, Format(cost))
}

func cmdCast(i *Interpreter, stmt string) {
	name, _, ok := quoted(rest(stmt))
	if !ok {
		name = rest(stmt)
	}
	key := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	cost, _ := asNumber(i.Variables["spell_"+key+"_cost"])
	mana := i.Number("player_mana", 100)
	if cost > mana {
		i.sayf("❌ Not enough mana for %s!", name)
		return
	}
	i.Variables["player_mana"] = mana - cost
	i.sayf("✨ Cast %s!", name)
}

func cmdFireball(i *Interpreter, stmt string) {
	i.say("🔥 FIREBALL!")
}

func cmdLightning(i *Interpreter, stmt string) {
	i.say("⚡ LIGHTNING STRIKE!")
}

func cmdHeal(i *Interpreter, stmt string) {
	n, ok := asNumber(i.Eval(rest(stmt)))
	if !ok {
		n = 10
	}
	i.addNum("player_health", n, 100)
	i.sayf("💚 Healed %s HP (health: %s)", Format(n), Format(i.Variables["player_health"]))
}

func cmdShield(i *Interpreter, stmt string) {
	n, ok := asNumber(i.Eval(rest(stmt)))
	if !ok {
		n = 10
	}
	i.Variables["player_shield"] = n
	i.sayf("🛡️ Shield: %s", Format(n))
}

func cmdTeleport(i *Interpreter, stmt string) {
	if xy, ok := i.coords(dropWord(rest(stmt), "to"), 2); ok {
		i.Variables["player_x"] = xy[0]
		i.Variables["player_y"] = xy[1]
		i.sayf("✨ Teleported to (%s, %s)", Format(xy[0]), Format(xy[1]))
	}
}

func cmdSummon(i *Interpreter, stmt string) {
	name := rest(stmt)
	if q, _, ok := quoted(name); ok {
		name = q
	}
	i.sayf("🌟 Summoned %s!", name)
}

func cmdEnchant(i *Interpreter, stmt string) {
	i.sayf("✨ Enchanted %s", rest(stmt))
}

func cmdSkill(i *Interpreter, stmt string) {
	name, vs, ok := cutWord(" "+rest(stmt), "is")
	if !ok {
		name, vs, ok = identifier(rest(stmt))
		if !ok {
			return
		}
	}
	if n, nok := asNumber(i.Eval(vs)); nok {
		i.Variables["skill_"+strings.ToLower(name)] = n
		i.sayf("🎯 Skill %s: %s", name, Format(n))
	}
}

func cmdAbility(i *Interpreter, stmt string) {
	name := rest(stmt)
	if q, _, ok := quoted(name); ok {
		name = q
	}
	i.sayf("💫 Ability used: %s", name)
}

func cmdCooldown(i *Interpreter, stmt string) {
	name, vs, ok := cutWord(" "+rest(stmt), "is")
	if !ok {
		return
	}
	if n, nok := asNumber(i.Eval(vs)); nok {
		i.Variables[strings.ToLower(strings.Trim(name, "\"'"))+"_cooldown"] = n
		i.sayf("⏳ Cooldown for %s: %ss", name, Format(n))
	}
}

func cmdBuff(i *Interpreter, stmt string) {
	i.sayf("⬆️ Buff applied: %s", rest(stmt))
}

func cmdDebuff(i *Interpreter, stmt string) {
	i.sayf("⬇️ Debuff applied: %s", rest(stmt))
}
