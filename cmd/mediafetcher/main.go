package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mediafetcher/internal/config"
	"mediafetcher/internal/fetch"
	"mediafetcher/internal/logging"
	"mediafetcher/internal/manifest"
	"mediafetcher/internal/utils"
)

func main() {
	zapCFG := zap.NewProductionConfig()
	zapCFG.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zapCFG.DisableCaller = true
	zapCFG.Encoding = "json"
	z, _ := zapCFG.Build()
	Logger := logging.NewLogger(*z.Sugar())
	fetch.Logging = Logger

	cfg, err := config.NewConfig()
	if err != nil {
		if errors.Is(err, config.ErrCfg) {
			config.NewDefaultConfig()
		}

		Logger.Panic(err)
	}

	flag.Parse()
	u, err := utils.ExtractURL(strings.Join(flag.Args(), " "))
	if err != nil {
		Logger.Panic("usage: mediafetcher <manifest or watch page url>")
	}

	// must happen before any manifest is parsed
	manifest.UseTolerantParsing()

	log := logging.NewWrapped(Logger.Sink(), cfg.Base.Debug)

	f := fetch.NewFetcher(cfg.Base.SizeLimit)
	if cfg.Base.UserAgent != "" {
		f.Headers = map[string]string{"User-Agent": cfg.Base.UserAgent}
	}
	if cfg.Base.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Base.Proxy)
		if err != nil {
			Logger.Panic(err)
		}
		f.Client = &http.Client{
			Transport: &http.Transport{Proxy: http.ProxyURL(proxyURL)},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Base.Timeout)*time.Second)
	defer cancel()

	mpd, err := f.Manifest(ctx, u.String())
	if err != nil {
		log.Exception(err)
		z.Sync()
		os.Exit(1)
	}

	for _, p := range mpd.Periods {
		for _, as := range p.AdaptationSets {
			group := "-"
			if as.Group != nil {
				group = strconv.Itoa(*as.Group)
			}
			for _, rep := range as.Representations {
				bw := 0
				if rep.Bandwidth != nil {
					bw = *rep.Bandwidth
				}
				log.Info(fmt.Sprintf("representation %s: group=%s codecs=%s bandwidth=%d", rep.ID, group, rep.Codecs, bw))
			}
		}
	}

	z.Sync()
}
