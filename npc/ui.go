package npc

import (
	"fmt"
	"math"
)

const activeSuffix = " (ACTIVE)"

// Label names and rule descriptions shown per state
var labelText = [...]struct {
	id    LabelID
	state State
	name  string
	rules string
}{
	{LabelIdle, StateIdle, "Idle", "\n- If player enters line of sight: change to MoveTowardsPlayer\n- Every few seconds: might switch to Patrol"},
	{LabelPatrol, StatePatrol, "Patrol", "\n- If player enters line of sight: change to MoveTowardsPlayer\n- After reaching end: might switch to Idle"},
	{LabelChase, StateChase, "MoveTowardsPlayer", "\n- Always moves toward player"},
}

// LabelText returns the text of a state label, marked when active
func LabelText(id LabelID, active bool) string {
	for _, l := range labelText {
		if l.id == id {
			if active {
				return l.name + activeSuffix + l.rules
			}
			return l.name + l.rules
		}
	}
	return ""
}

// CountdownText formats the decision timer rounded up to whole seconds
func CountdownText(seconds float64) string {
	n := int(math.Ceil(seconds))
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("Countdown: %d", n)
}

// refreshUI highlights the active state label and rewrites all three
func (c *Controller) refreshUI() {
	state := c.State()
	for _, l := range labelText {
		active := l.state == state
		c.deps.Labels.SetLabelActive(l.id, active)
		c.deps.Labels.SetLabelText(l.id, LabelText(l.id, active))
	}
}

func (c *Controller) refreshCountdown() {
	c.deps.Labels.SetLabelText(LabelCountdown, CountdownText(c.timer.Seconds()))
}
