package script

import (
	"fmt"
	"strings"
	"time"
)

func init() {
	register(cmdTime, "time")
	register(cmdDate, "date")
	register(cmdTimestamp, "timestamp")
	register(cmdYear, "year")
	register(cmdMonth, "month")
	register(cmdDay, "day")
	register(cmdHour, "hour")
	register(cmdMinute, "minute")
	register(cmdSecond, "second")
	register(cmdWait, "wait", "sleep")
	register(cmdTimer, "timer")
	register(cmdCountdown, "countdown")
	register(cmdPause, "pause")
	register(cmdResume, "resume")
}

// now is swapped out by tests.
var now = time.Now

func cmdTime(i *Interpreter, stmt string) {
	result := now().Format("15:04:05")
	i.Variables["_time"] = result
	i.show("Time: " + result)
}

func cmdDate(i *Interpreter, stmt string) {
	result := now().Format("2006-01-02")
	i.Variables["_date"] = result
	i.show("Date: " + result)
}

func cmdTimestamp(i *Interpreter, stmt string) {
	result := float64(now().Unix())
	i.Variables["_timestamp"] = result
	i.show("Timestamp: " + Format(result))
}

func cmdYear(i *Interpreter, stmt string) {
	result := float64(now().Year())
	i.Variables["_year"] = result
	i.show("Year: " + Format(result))
}

func cmdMonth(i *Interpreter, stmt string) {
	result := float64(now().Month())
	i.Variables["_month"] = result
	i.show("Month: " + Format(result))
}

func cmdDay(i *Interpreter, stmt string) {
	result := float64(now().Day())
	i.Variables["_day"] = result
	i.show("Day: " + Format(result))
}

func cmdHour(i *Interpreter, stmt string) {
	result := float64(now().Hour())
	i.Variables["_hour"] = result
	i.show("Hour: " + Format(result))
}

func cmdMinute(i *Interpreter, stmt string) {
	result := float64(now().Minute())
	i.Variables["_minute"] = result
	i.show("Minute: " + Format(result))
}

func cmdSecond(i *Interpreter, stmt string) {
	result := float64(now().Second())
	i.Variables["_second"] = result
	i.show("Second: " + Format(result))
}

// cmdWait queues a delay for the main loop instead of blocking script
// execution inside a frame.
func cmdWait(i *Interpreter, stmt string) {
	arg := dropWord(rest(stmt), "for")
	arg = strings.TrimSuffix(strings.TrimSuffix(arg, " seconds"), " second")
	seconds, ok := asNumber(i.Eval(arg))
	if !ok || seconds < 0 {
		return
	}
	i.PendingWait += time.Duration(seconds * float64(time.Second))
	i.logf("info", "⏱️ Waiting %s seconds", Format(seconds))
}

func cmdTimer(i *Interpreter, stmt string) {
	switch {
	case containsWord(stmt, "start"):
		i.Variables["timer_running"] = true
		i.show("⏱️ Timer started")
	case containsWord(stmt, "stop"):
		i.Variables["timer_running"] = false
		i.show("⏱️ Timer stopped")
	case containsWord(stmt, "reset"):
		i.Variables["timer_value"] = 0.0
		i.show("⏱️ Timer reset")
	}
}

func cmdCountdown(i *Interpreter, stmt string) {
	if seconds, ok := asNumber(i.Eval(dropWord(rest(stmt), "from"))); ok {
		i.Variables["countdown_time"] = seconds
		i.show(fmt.Sprintf("⏳ Countdown: %s seconds", Format(seconds)))
	}
}

// cmdPause pauses the game; "pause for N" is a wait alias.
func cmdPause(i *Interpreter, stmt string) {
	if rest(stmt) != "" {
		cmdWait(i, stmt)
		return
	}
	i.Variables["game_paused"] = true
	i.show("⏸️ Game Paused")
}

func cmdResume(i *Interpreter, stmt string) {
	i.Variables["game_paused"] = false
	i.show("▶️ Game Resumed")
}
