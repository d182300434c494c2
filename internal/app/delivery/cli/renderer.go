package cli

import (
	"fmt"
	"io"
	"slotfinder/internal/app/models"
	"slotfinder/internal/pkg/constvars"
	"strings"
)

// RenderSchedule writes a schedule as a titled block: the title centered in a
// rule of dashes, then one line per date with its intervals indented below.
// With skipEmpty set, dates without intervals are omitted entirely.
func RenderSchedule(w io.Writer, schedule models.Schedule, title string, skipEmpty bool) {
	fmt.Fprintf(w, "\n%s\n\n", renderTitle(title))

	for _, daySchedule := range schedule {
		if skipEmpty && len(daySchedule.Slots) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", daySchedule.Day.Date)
		for _, slot := range daySchedule.Slots {
			fmt.Fprintf(w, "\t%s - %s\n", slot.Start, slot.End)
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("-", constvars.ScheduleDisplayWidth))
}

func renderTitle(title string) string {
	if len(title) >= constvars.ScheduleDisplayWidth {
		return title
	}
	padding := constvars.ScheduleDisplayWidth - len(title)
	left := padding / 2
	right := padding - left
	return strings.Repeat("-", left) + title + strings.Repeat("-", right)
}
