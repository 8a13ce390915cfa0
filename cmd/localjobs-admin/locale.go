package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/localjobs/localjobs-web/config"
	"github.com/localjobs/localjobs-web/internal/bootstrap"
	"github.com/localjobs/localjobs-web/internal/data"
	"github.com/localjobs/localjobs-web/internal/i18n"
)

type localeOptions struct {
	Action    string
	VisitorID string
	Locale    string
}

func parseLocaleArgs(args []string) (localeOptions, error) {
	if len(args) == 0 {
		return localeOptions{}, errors.New("usage: locale get|set --visitor <id> [--locale <code>]")
	}
	opts := localeOptions{Action: args[0]}
	if opts.Action != "get" && opts.Action != "set" {
		return localeOptions{}, fmt.Errorf("unknown locale action %q (want get or set)", opts.Action)
	}

	fs := flag.NewFlagSet("locale "+opts.Action, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&opts.VisitorID, "visitor", "", "Visitor id from the lj_visitor cookie (required)")
	if opts.Action == "set" {
		fs.StringVar(&opts.Locale, "locale", "", "Locale code: en, bn or hi (required)")
	}
	if err := fs.Parse(args[1:]); err != nil {
		return localeOptions{}, err
	}
	if strings.TrimSpace(opts.VisitorID) == "" {
		return localeOptions{}, errors.New("--visitor is required")
	}
	if opts.Action == "set" {
		normalized := i18n.Normalize(opts.Locale)
		if normalized == "" {
			return localeOptions{}, fmt.Errorf("--locale %q is not supported (want one of %s)",
				opts.Locale, strings.Join(i18n.Locales(), ", "))
		}
		opts.Locale = normalized
	}
	return opts, nil
}

func runLocale(cmdCtx *commandContext, args []string) error {
	opts, err := parseLocaleArgs(args)
	if err != nil {
		return err
	}

	cfg := cmdCtx.Config
	if cfg.Redis.Disabled {
		return errors.New("locale preferences live in redis; REDIS_DISABLED is set")
	}
	cfg.Notifications.Backend = config.NotificationBackendMemory

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, defaultCommandTimeout)
	defer cancel()

	infra, err := bootstrap.OpenInfrastructure(ctx, &cfg, nil)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := infra.Close(context.Background()); cerr != nil {
			cmdCtx.Logger.Warn("close infrastructure failed", "error", cerr)
		}
	}()

	prefs := data.NewLocalePrefRepo(infra.CacheRepository(), data.DefaultLocalePrefTTL)
	switch opts.Action {
	case "set":
		if err := prefs.Set(ctx, opts.VisitorID, opts.Locale); err != nil {
			return err
		}
		return writef(cmdCtx.Out, "visitor %s locale set to %s\n", opts.VisitorID, opts.Locale)
	default:
		loc, ok, err := prefs.Get(ctx, opts.VisitorID)
		if err != nil {
			return err
		}
		if !ok {
			return writef(cmdCtx.Out, "visitor %s has no stored locale\n", opts.VisitorID)
		}
		return writef(cmdCtx.Out, "visitor %s locale %s\n", opts.VisitorID, loc)
	}
}
