package script

import (
	"strings"
	"testing"
	"time"
)

func TestScoreAndLives(t *testing.T) {
	env := newEnv()
	env.run("score add 10\nscore add 15")
	if env.number(t, "score") != 25 {
		t.Fatalf("score = %v", env.interp.Variables["score"])
	}
	env.run("lives subtract 1")
	if env.number(t, "lives") != 2 {
		t.Fatalf("lives = %v, want base 3 minus 1", env.interp.Variables["lives"])
	}
	if last := env.says[len(env.says)-1]; !strings.Contains(last, "Lives: 2") {
		t.Fatalf("lives message = %q", last)
	}
}

func TestHighscore(t *testing.T) {
	env := newEnv()
	env.run("score set 100\nhighscore")
	if env.number(t, "highscore") != 100 {
		t.Fatalf("highscore = %v", env.interp.Variables["highscore"])
	}
	env.run("score set 50\nhighscore")
	if env.number(t, "highscore") != 100 {
		t.Fatal("highscore regressed on a lower score")
	}
}

func TestGunShootReload(t *testing.T) {
	env := newEnv()
	env.run("gun \"blaster\"\nshoot")
	if env.number(t, "ammo") != 29 {
		t.Fatalf("ammo = %v after one shot", env.interp.Variables["ammo"])
	}
	env.run("ammo set 0\nshoot")
	if last := env.says[len(env.says)-1]; !strings.Contains(last, "Out of ammo") {
		t.Fatalf("empty gun said %q", last)
	}
	env.run("reload")
	if env.number(t, "ammo") != 30 {
		t.Fatalf("ammo = %v after reload", env.interp.Variables["ammo"])
	}
}

func TestXPAndLevel(t *testing.T) {
	env := newEnv()
	env.run("xp add 50\nxp add 25\nlevelup")
	if env.number(t, "player_xp") != 75 {
		t.Fatalf("player_xp = %v", env.interp.Variables["player_xp"])
	}
	if env.number(t, "player_level") != 2 {
		t.Fatalf("player_level = %v, want base 1 plus 1", env.interp.Variables["player_level"])
	}
}

func TestManaBase(t *testing.T) {
	env := newEnv()
	env.run("mana subtract 30")
	if env.number(t, "player_mana") != 70 {
		t.Fatalf("player_mana = %v, want base 100 minus 30", env.interp.Variables["player_mana"])
	}
}

func TestSpellCasting(t *testing.T) {
	env := newEnv()
	env.run("spell \"Frost Bolt\" cost 40\ncast \"Frost Bolt\"\ncast \"Frost Bolt\"\ncast \"Frost Bolt\"")
	if env.number(t, "player_mana") != 20 {
		t.Fatalf("player_mana = %v, want 100 minus two casts", env.interp.Variables["player_mana"])
	}
	if last := env.says[len(env.says)-1]; !strings.Contains(last, "Not enough mana") {
		t.Fatalf("third cast said %q", last)
	}
}

func TestInventory(t *testing.T) {
	env := newEnv()
	env.run("additem \"sword\"\nadditem \"potion\"\nhasitem \"sword\"")
	if env.interp.Variables["_hasitem"] != Value(true) {
		t.Fatal("_hasitem false after additem")
	}
	env.run("useitem \"potion\"\nhasitem \"potion\"")
	if env.interp.Variables["_hasitem"] != Value(false) {
		t.Fatal("useitem did not consume the potion")
	}
}

func TestEnemyAndHit(t *testing.T) {
	env := newEnv()
	env.run("enemy \"Goblin\" health 30 attack 5\nhit goblin for 12")
	if env.number(t, "enemy_goblin_health") != 18 {
		t.Fatalf("enemy health = %v", env.interp.Variables["enemy_goblin_health"])
	}
}

func TestCalculate(t *testing.T) {
	env := newEnv()
	env.run("calculate 6 * 7")
	if env.number(t, "result") != 42 {
		t.Fatalf("result = %v", env.interp.Variables["result"])
	}
}

func TestStringVerbs(t *testing.T) {
	env := newEnv()
	env.run(`name = "hello"`)
	env.run("uppercase name")
	if env.interp.Variables["_text"] != Value("HELLO") {
		t.Fatalf("_text = %v", env.interp.Variables["_text"])
	}
	env.run(`split "a,b,c" by ","`)
	parts, ok := asList(env.interp.Variables["_split"])
	if !ok || len(parts) != 3 || parts[1] != Value("b") {
		t.Fatalf("_split = %v", env.interp.Variables["_split"])
	}
	env.run(`join "foo" and "bar"`)
	if env.interp.Variables["_joined"] != Value("foobar") {
		t.Fatalf("_joined = %v", env.interp.Variables["_joined"])
	}
}

func TestListVerbs(t *testing.T) {
	env := newEnv()
	env.run("items is [3, 1, 2]")
	env.run("append 4 to items")
	env.run("sort items")
	l, _ := asList(env.interp.Variables["items"])
	if Format(Value(l)) != "[1, 2, 3, 4]" {
		t.Fatalf("items = %v", l)
	}
	env.run("remove 2 from items")
	l, _ = asList(env.interp.Variables["items"])
	if Format(Value(l)) != "[1, 3, 4]" {
		t.Fatalf("items after remove = %v", l)
	}
	env.run("count 3 in items")
	if env.number(t, "_count") != 1 {
		t.Fatalf("_count = %v", env.interp.Variables["_count"])
	}
}

func TestVariableVerbs(t *testing.T) {
	env := newEnv()
	env.run("remember health as 100\nincrease health by 20\ndecrease health by 50")
	if env.number(t, "health") != 70 {
		t.Fatalf("health = %v", env.interp.Variables["health"])
	}
	env.run("swap a and b") // missing vars, must not panic
	env.run("x = 1\ny = 2\nswap x and y")
	if env.number(t, "x") != 2 || env.number(t, "y") != 1 {
		t.Fatalf("swap failed: x=%v y=%v", env.interp.Variables["x"], env.interp.Variables["y"])
	}
	env.run("exists x")
	if env.interp.Variables["_exists"] != Value(true) {
		t.Fatal("_exists false for existing variable")
	}
	env.run("typeof x")
	if env.interp.Variables["_type"] != Value("number") {
		t.Fatalf("_type = %v", env.interp.Variables["_type"])
	}
}

func TestTimeVerbs(t *testing.T) {
	fixed := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	prev := now
	now = func() time.Time { return fixed }
	defer func() { now = prev }()

	env := newEnv()
	env.run("time\ndate\nyear")
	if env.interp.Variables["_time"] != Value("09:30:00") {
		t.Fatalf("_time = %v", env.interp.Variables["_time"])
	}
	if env.interp.Variables["_date"] != Value("2024-03-15") {
		t.Fatalf("_date = %v", env.interp.Variables["_date"])
	}
	if env.number(t, "_year") != 2024 {
		t.Fatalf("_year = %v", env.interp.Variables["_year"])
	}
}

func TestAssert(t *testing.T) {
	env := newEnv()
	env.run("assert 1 less than 2")
	if len(env.logs) != 1 || !strings.HasPrefix(env.logs[0], "success:") {
		t.Fatalf("passing assert logged %v", env.logs)
	}
	env.run("assert 2 less than 1")
	if last := env.logs[len(env.logs)-1]; !strings.HasPrefix(last, "error:") {
		t.Fatalf("failing assert logged %q", last)
	}
}

func TestTimerAndPause(t *testing.T) {
	env := newEnv()
	env.run("timer start\npause\nresume\ntimer stop")
	if env.interp.Variables["timer_running"] != Value(false) {
		t.Fatal("timer not stopped")
	}
	if env.interp.Variables["game_paused"] != Value(false) {
		t.Fatal("game not resumed")
	}
}
