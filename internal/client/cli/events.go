package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/unievents/internal/client/models"
	"github.com/dmitrijs2005/unievents/internal/client/services"
)

// dateLayout is how event dates are typed and shown, in local time.
const dateLayout = "2006-01-02 15:04"

var (
	errNotAllowed = errors.New("you are not allowed to do that")
	errUsageID    = errors.New("an event id is required, e.g. show 12")
)

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errUsageID
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid event id %q", args[0])
	}
	return id, nil
}

// List prints all events, soonest first as returned by the server.
func (a *App) List(ctx context.Context) error {
	events, err := a.eventService.List(ctx)
	if err != nil {
		return a.apiError(ctx, err)
	}
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events yet.")
		return nil
	}
	for _, e := range events {
		fmt.Fprintf(a.out, "%4d  %s  %-8s  %s @ %s\n",
			e.ID, e.Date.Local().Format(dateLayout), shortType(e.Type), e.Title, e.Location)
	}
	return nil
}

func shortType(t models.EventType) string {
	if t == models.EventSocial {
		return "social"
	}
	return "academic"
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	e, err := a.eventService.Get(ctx, id)
	if err != nil {
		return a.apiError(ctx, err)
	}
	a.printEvent(e)
	return nil
}

func (a *App) printEvent(e *models.Event) {
	fmt.Fprintf(a.out, "#%d %s\n", e.ID, e.Title)
	fmt.Fprintf(a.out, "  When:  %s\n", e.Date.Local().Format(dateLayout))
	fmt.Fprintf(a.out, "  Where: %s\n", e.Location)
	fmt.Fprintf(a.out, "  Type:  %s\n", e.Type.DisplayName())
	if e.CreatedByName != "" {
		fmt.Fprintf(a.out, "  By:    %s\n", e.CreatedByName)
	}
	if e.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", e.Description)
	}
	if a.state.User.CanManageEvent(e) {
		fmt.Fprintf(a.out, "\n(edit %d | delete %d)\n", e.ID, e.ID)
	}
}

// Create asks for the event fields and posts them. Only administrators and
// teachers may create events.
func (a *App) Create(ctx context.Context) error {
	if !a.state.User.CanCreateEvents() {
		return errNotAllowed
	}

	in, err := a.readEventInput(models.EventInput{Type: models.EventAcademic})
	if err != nil {
		return err
	}
	e, err := a.eventService.Create(ctx, in)
	if err != nil {
		return a.apiError(ctx, err)
	}
	fmt.Fprintf(a.out, "Event #%d created.\n", e.ID)
	return nil
}

// Edit loads an event and lets its creator or an administrator change it.
// An empty answer keeps the current value.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	e, err := a.eventService.Get(ctx, id)
	if err != nil {
		return a.apiError(ctx, err)
	}
	if !a.state.User.CanManageEvent(e) {
		return errNotAllowed
	}

	in, err := a.readEventInput(e.Input())
	if err != nil {
		return err
	}
	if _, err := a.eventService.Update(ctx, id, in); err != nil {
		return a.apiError(ctx, err)
	}
	fmt.Fprintf(a.out, "Event #%d updated.\n", id)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	e, err := a.eventService.Get(ctx, id)
	if err != nil {
		return a.apiError(ctx, err)
	}
	if !a.state.User.CanManageEvent(e) {
		return errNotAllowed
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q? (y/N)", e.Title), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.eventService.Delete(ctx, id); err != nil {
		return a.apiError(ctx, err)
	}
	fmt.Fprintf(a.out, "Event #%d deleted.\n", id)
	return nil
}

// readEventInput prompts for every field, showing cur as the default, and
// validates the result.
func (a *App) readEventInput(cur models.EventInput) (models.EventInput, error) {
	in := cur

	ask := func(label, def string) (string, error) {
		prompt := label
		if def != "" {
			prompt = fmt.Sprintf("%s [%s]", label, def)
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		if v == "" {
			return def, nil
		}
		return v, nil
	}

	var err error
	if in.Title, err = ask("Title", cur.Title); err != nil {
		return in, err
	}
	if in.Location, err = ask("Location", cur.Location); err != nil {
		return in, err
	}

	var curDate string
	if !cur.Date.IsZero() {
		curDate = cur.Date.Local().Format(dateLayout)
	}
	date, err := ask("Date (YYYY-MM-DD HH:MM)", curDate)
	if err != nil {
		return in, err
	}
	if date != "" {
		d, err := time.ParseInLocation(dateLayout, date, time.Local)
		if err != nil {
			return in, services.ValidationErrors{"date": "use the format YYYY-MM-DD HH:MM"}
		}
		in.Date = d
	}

	typ, err := ask("Type (academico|social)", string(cur.Type))
	if err != nil {
		return in, err
	}
	in.Type = models.EventType(strings.ToLower(typ))

	desc, err := GetMultiline(a.reader, "Description (empty line keeps the current one)", a.out)
	if err != nil {
		return in, err
	}
	if desc != "" {
		in.Description = desc
	}

	if err := services.ValidateEvent(&in, a.now()); err != nil {
		return in, err
	}
	return in, nil
}
