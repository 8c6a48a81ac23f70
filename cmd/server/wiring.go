package main

import (
	"github.com/QuangTung97/promo-engagement/config"
	"github.com/QuangTung97/promo-engagement/pkg/cacheclient"
	"github.com/QuangTung97/promo-engagement/pkg/dispatch"
	"github.com/QuangTung97/promo-engagement/pkg/ledger"
	"github.com/QuangTung97/promo-engagement/pkg/memtable"
	"github.com/QuangTung97/promo-engagement/pkg/reward"
	"github.com/QuangTung97/promo-engagement/pkg/template"
	"github.com/QuangTung97/promo-engagement/repository"
	"github.com/QuangTung97/promo-engagement/service/engagement"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
)

type engine struct {
	service engagement.IService
	close   func()
}

func newCampaignRepo(conf config.Config) (repository.Campaign, func()) {
	local := memtable.New(conf.Memcache.LocalCacheSize, int(conf.Memcache.TTL.Seconds()))

	if conf.Memcache.Host == "" {
		return repository.NewCachedCampaign(repository.NewCampaign(), local, nil), func() {}
	}

	numConns := 1
	if conf.Memcache.NumConns > 0 {
		numConns = conf.Memcache.NumConns
	}
	client := cacheclient.New(conf.Memcache.Addr(), numConns, conf.Memcache.TTL)
	return repository.NewCachedCampaign(repository.NewCampaign(), local, client), func() {
		_ = client.Close()
	}
}

func newEngine(conf config.Config, db *sqlx.DB, reg prometheus.Registerer) engine {
	renderer, err := template.New(conf.Template)
	if err != nil {
		panic(err)
	}

	campaignRepo, closeCache := newCampaignRepo(conf)
	publisher := dispatch.NewPublisher(conf.AMQP)

	sampler := reward.NewSampler(
		reward.WithDefaultFirstActionReward(conf.Engine.FirstActionReward()),
		reward.WithRegisterer(reg),
	)

	tracer := otel.GetTracerProvider().Tracer("engagement")

	service := engagement.NewService(
		repository.NewProvider(db),
		engagement.Repositories{
			Assignment: repository.NewAssignmentWrapper(repository.NewAssignment(), tracer, "repo::"),
			Campaign:   campaignRepo,
			Reward:     repository.NewReward(),
			User:       repository.NewUser(),
		},
		engagement.Collaborators{
			Dispatcher: publisher,
			Ledger:     ledger.New(db),
			Renderer:   renderer,
		},
		sampler,
		conf.Engine,
		engagement.WithRegisterer(reg),
	)

	return engine{
		service: engagement.NewIServiceWrapper(service, tracer, "service::"),
		close: func() {
			publisher.Close()
			closeCache()
		},
	}
}
