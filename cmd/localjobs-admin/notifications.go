package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/localjobs/localjobs-web/config"
	"github.com/localjobs/localjobs-web/internal/bootstrap"
	"github.com/localjobs/localjobs-web/internal/domain/model"
	"github.com/localjobs/localjobs-web/internal/service"
)

const seedConcurrency = 4

// withNotifications opens the configured notification store (Redis is not needed) and
// runs fn with a service over it.
func withNotifications(cmdCtx *commandContext, fn func(context.Context, *service.NotificationService) error) error {
	cfg := cmdCtx.Config
	cfg.Redis.Disabled = true

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, defaultCommandTimeout)
	defer cancel()

	infra, err := bootstrap.OpenInfrastructure(ctx, &cfg, cmdCtx.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := infra.Close(context.Background()); cerr != nil {
			cmdCtx.Logger.Warn("close infrastructure failed", "error", cerr)
		}
	}()

	repo, err := infra.NotificationRepository(ctx, &cfg)
	if err != nil {
		return err
	}
	svc := service.NewNotificationService(service.NotificationServiceOptions{
		Repo:   repo,
		Logger: cmdCtx.Logger,
		Config: service.NotificationServiceConfig{
			Timeout: cfg.Notifications.StoreTimeout,
			BaseURL: cfg.HTTP.BaseURL,
			Backend: string(cfg.Notifications.Backend),
		},
	})
	return fn(ctx, svc)
}

type notifyOptions struct {
	UserID  string
	Message string
	Type    model.NotificationType
	Link    *string
}

func parseNotifyFlags(args []string) (notifyOptions, error) {
	fs := flag.NewFlagSet("notify", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		opts    notifyOptions
		rawType string
		link    string
	)
	fs.StringVar(&opts.UserID, "user", "", "Recipient user id (required)")
	fs.StringVar(&opts.Message, "message", "", "Notification text (required)")
	fs.StringVar(&rawType, "type", string(model.NotificationTypeSystem), "One of job, application, message, system")
	fs.StringVar(&link, "link", "", "Optional link, relative or same-site absolute")

	if err := fs.Parse(args); err != nil {
		return notifyOptions{}, err
	}
	if strings.TrimSpace(opts.UserID) == "" {
		return notifyOptions{}, errors.New("--user is required")
	}
	if strings.TrimSpace(opts.Message) == "" {
		return notifyOptions{}, errors.New("--message is required")
	}
	t, ok := model.ParseNotificationType(rawType)
	if !ok {
		return notifyOptions{}, fmt.Errorf("--type %q is not one of job, application, message, system", rawType)
	}
	opts.Type = t
	if link = strings.TrimSpace(link); link != "" {
		opts.Link = &link
	}
	return opts, nil
}

func runNotify(cmdCtx *commandContext, args []string) error {
	opts, err := parseNotifyFlags(args)
	if err != nil {
		return err
	}
	return withNotifications(cmdCtx, func(ctx context.Context, svc *service.NotificationService) error {
		created, err := svc.Create(ctx, &model.CreateNotificationRequest{
			UserID:  opts.UserID,
			Message: opts.Message,
			Type:    opts.Type,
			Link:    opts.Link,
		})
		if err != nil {
			return err
		}
		return writef(cmdCtx.Out, "created notification %s for %s\n", created.ID, created.UserID)
	})
}

type listOptions struct {
	UserID string
	Query  string
}

func parseListFlags(args []string) (listOptions, error) {
	fs := flag.NewFlagSet("notifications", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts listOptions
	fs.StringVar(&opts.UserID, "user", "", "User id whose notifications are listed (required)")
	fs.StringVar(&opts.Query, "query", "", "JMESPath expression evaluated over the list, printed as JSON")

	if err := fs.Parse(args); err != nil {
		return listOptions{}, err
	}
	if strings.TrimSpace(opts.UserID) == "" {
		return listOptions{}, errors.New("--user is required")
	}
	return opts, nil
}

func runListNotifications(cmdCtx *commandContext, args []string) error {
	opts, err := parseListFlags(args)
	if err != nil {
		return err
	}
	return withNotifications(cmdCtx, func(ctx context.Context, svc *service.NotificationService) error {
		if strings.TrimSpace(opts.Query) != "" {
			out, err := svc.Query(ctx, opts.UserID, opts.Query)
			if err != nil {
				return err
			}
			return writeQueryResult(cmdCtx.Out, out)
		}
		items, err := svc.List(ctx, opts.UserID)
		if err != nil {
			return err
		}
		return writeNotificationTable(cmdCtx.Out, items)
	})
}

func writeQueryResult(w io.Writer, out any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeNotificationTable(w io.Writer, items []*model.Notification) error {
	if len(items) == 0 {
		return writeln(w, "no notifications")
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if err := writef(tw, "ID\tTYPE\tREAD\tCREATED\tMESSAGE\n"); err != nil {
		return err
	}
	for _, n := range items {
		read := "no"
		if n.Read {
			read = "yes"
		}
		if err := writef(tw, "%s\t%s\t%s\t%s\t%s\n",
			n.ID, n.Type, read, n.CreatedAt.UTC().Format(time.RFC3339), n.Message); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func parseIDArgs(name string, args []string) ([]string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	ids := make([]string, 0, fs.NArg())
	for _, id := range fs.Args() {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s requires at least one notification id", name)
	}
	return ids, nil
}

func runMarkRead(cmdCtx *commandContext, args []string) error {
	return runToggle(cmdCtx, "mark-read", args, (*service.NotificationService).MarkRead)
}

func runMarkUnread(cmdCtx *commandContext, args []string) error {
	return runToggle(cmdCtx, "mark-unread", args, (*service.NotificationService).MarkUnread)
}

func runToggle(
	cmdCtx *commandContext,
	name string,
	args []string,
	fn func(*service.NotificationService, context.Context, string) error,
) error {
	ids, err := parseIDArgs(name, args)
	if err != nil {
		return err
	}
	return withNotifications(cmdCtx, func(ctx context.Context, svc *service.NotificationService) error {
		var errs []error
		for _, id := range ids {
			if err := fn(svc, ctx, id); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", id, err))
				continue
			}
			if err := writef(cmdCtx.Out, "%s %s\n", name, id); err != nil {
				return err
			}
		}
		return errors.Join(errs...)
	})
}

type seedOptions struct {
	UserID string
}

func parseSeedFlags(args []string) (seedOptions, error) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts seedOptions
	fs.StringVar(&opts.UserID, "user", "", "User id that receives the demo notifications (required)")
	if err := fs.Parse(args); err != nil {
		return seedOptions{}, err
	}
	if strings.TrimSpace(opts.UserID) == "" {
		return seedOptions{}, errors.New("--user is required")
	}
	return opts, nil
}

func demoNotifications(userID string) []model.CreateNotificationRequest {
	link := func(s string) *string { return &s }
	return []model.CreateNotificationRequest{
		{UserID: userID, Type: model.NotificationTypeSystem, Message: "Welcome to LocalJobs! Complete your profile to get better matches."},
		{UserID: userID, Type: model.NotificationTypeJob, Message: "A new delivery partner job was posted near you.", Link: link("/#featured-jobs")},
		{UserID: userID, Type: model.NotificationTypeApplication, Message: "Your application for Shop Assistant was viewed."},
		{UserID: userID, Type: model.NotificationTypeMessage, Message: "You have a new message from an employer."},
	}
}

func runSeed(cmdCtx *commandContext, args []string) error {
	opts, err := parseSeedFlags(args)
	if err != nil {
		return err
	}
	if cmdCtx.Config.Notifications.Backend == config.NotificationBackendMemory {
		cmdCtx.Logger.Warn("seeding the in-memory store; records vanish when this command exits")
	}
	return withNotifications(cmdCtx, func(ctx context.Context, svc *service.NotificationService) error {
		reqs := demoNotifications(opts.UserID)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(seedConcurrency)
		for i := range reqs {
			req := reqs[i]
			g.Go(func() error {
				_, err := svc.Create(gctx, &req)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		return writef(cmdCtx.Out, "seeded %d notifications for %s\n", len(reqs), opts.UserID)
	})
}
