package main

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/promo-engagement/config"
	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/pkg/cacheclient"
	"github.com/QuangTung97/promo-engagement/pkg/memtable"
	"github.com/QuangTung97/promo-engagement/pkg/reward"
	"github.com/QuangTung97/promo-engagement/repository"
	"github.com/QuangTung97/promo-engagement/service/engagement"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchGetAssignmentCommand(),
		rewardDistributionCommand(),
		seedDataCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

const (
	seedRewardRuleID   = 21
	seedInfoCampaign   = 11
	seedSurveyCampaign = 12
	seedFirstUserID    = 1000
)

func printPercentiles(durations [][]time.Duration) {
	var history []time.Duration
	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	if len(history) == 0 {
		return
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	numHistory := len(history)
	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("P999:", history[numHistory*999/1000])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("AVG:", total/time.Duration(numHistory))
}

func benchGetAssignment(numThreads int, numElements int) {
	conf := config.Load()
	db := conf.MySQL.MustConnect(config.NewLogger(conf.Log))

	numConns := 1
	if conf.Memcache.NumConns > 0 {
		numConns = conf.Memcache.NumConns
	}
	fmt.Println("MEMCACHE ADDR:", conf.Memcache.Addr())

	client := cacheclient.New(conf.Memcache.Addr(), numConns, conf.Memcache.TTL)
	defer func() { _ = client.Close() }()
	local := memtable.New(conf.Memcache.LocalCacheSize, 0)

	provider := repository.NewProvider(db)
	service := engagement.NewService(provider, engagement.Repositories{
		Assignment: repository.NewAssignment(),
		Campaign:   repository.NewCachedCampaign(repository.NewCampaign(), local, client),
		Reward:     repository.NewReward(),
		User:       repository.NewUser(),
	}, engagement.Collaborators{}, reward.NewSampler(), conf.Engine)

	var ids []int64
	err := db.Select(&ids, `SELECT id FROM assignment ORDER BY id LIMIT 1000`)
	if err != nil {
		panic(err)
	}
	if len(ids) == 0 {
		fmt.Println("no assignments, run `bench seed` first")
		return
	}

	durations := make([][]time.Duration, numThreads)
	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numElements; i++ {
				id := ids[(threadIndex*numElements+i)%len(ids)]

				start := time.Now()
				_, err := service.GetAssignment(context.Background(), id)
				if err != nil {
					fmt.Println(id, err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	printPercentiles(durations)
}

func benchGetAssignmentCommand() *cobra.Command {
	var numThreads int
	var numElements int

	cmd := &cobra.Command{
		Use:   "get",
		Short: "benchmark GetAssignment through the cached campaign repository",
		Run: func(cmd *cobra.Command, args []string) {
			benchGetAssignment(numThreads, numElements)
		},
	}
	cmd.Flags().IntVar(&numThreads, "threads", 50, "number of concurrent callers")
	cmd.Flags().IntVar(&numElements, "calls", 2000, "calls per thread")
	return cmd
}

func seedRewardRule() model.RewardRule {
	return model.RewardRule{
		ID:                seedRewardRuleID,
		Name:              "commute points",
		Min:               decimal.RequireFromString("0.50"),
		Max:               decimal.RequireFromString("5.00"),
		Mean:              decimal.RequireFromString("2.00"),
		Beta:              decimal.RequireFromString("0.8"),
		FirstActionReward: decimal.NewNullDecimal(decimal.RequireFromString("0.99")),
	}
}

func rewardDistribution(samples int, seed int64) {
	rule := seedRewardRule()
	sampler := reward.NewSampler(reward.WithSeed(seed))

	outcomes := map[reward.Outcome]int{}
	amounts := make([]float64, 0, samples)
	sum := decimal.Zero

	for i := 0; i < samples; i++ {
		result, err := sampler.Sample(context.Background(), rule, false)
		if err != nil {
			panic(err)
		}
		outcomes[result.Outcome]++
		sum = sum.Add(result.Amount)

		f, _ := result.Amount.Float64()
		amounts = append(amounts, f)
	}
	sort.Float64s(amounts)

	fmt.Printf("RULE: min=%s mean=%s max=%s beta=%s\n", rule.Min, rule.Mean, rule.Max, rule.Beta)
	fmt.Println("SAMPLES:", samples)
	for _, o := range []reward.Outcome{reward.OutcomeZero, reward.OutcomeSampled, reward.OutcomeCapped} {
		fmt.Printf("%s: %d (%.2f%%)\n", o, outcomes[o], 100*float64(outcomes[o])/float64(samples))
	}
	fmt.Println("MEAN PAID:", sum.Div(decimal.NewFromInt(int64(samples))).StringFixed(4))
	fmt.Println("P50:", amounts[samples*50/100])
	fmt.Println("P90:", amounts[samples*90/100])
	fmt.Println("P99:", amounts[samples*99/100])
}

func rewardDistributionCommand() *cobra.Command {
	var samples int
	var seed int64

	cmd := &cobra.Command{
		Use:   "reward",
		Short: "print the reward distribution of the demo reward rule",
		Run: func(cmd *cobra.Command, args []string) {
			if samples <= 0 {
				fmt.Println("samples must be positive")
				return
			}
			rewardDistribution(samples, seed)
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 100000, "number of draws")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func seedData(ctx context.Context, provider repository.Provider, numUsers int, now time.Time) error {
	campaignRepo := repository.NewCampaign()
	assignmentRepo := repository.NewAssignment()

	return provider.Transact(ctx, func(ctx context.Context) error {
		if err := campaignRepo.UpsertRewardRule(ctx, seedRewardRule()); err != nil {
			return err
		}

		campaigns := []model.Campaign{
			{
				ID:           seedInfoCampaign,
				Name:         "Leave early, skip the jam",
				Status:       model.CampaignStatusActive,
				CardType:     model.CardTypeGoEarly,
				RewardRuleID: sql.NullInt64{Valid: true, Int64: seedRewardRuleID},
				StartTime:    now.Add(-24 * time.Hour),
				EndTime:      now.Add(30 * 24 * time.Hour),
			},
			{
				ID:           seedSurveyCampaign,
				Name:         "Commute survey",
				Status:       model.CampaignStatusActive,
				CardType:     model.CardTypeMicrosurvey,
				RewardRuleID: sql.NullInt64{Valid: true, Int64: seedRewardRuleID},
				StartTime:    now.Add(-24 * time.Hour),
				EndTime:      now.Add(30 * 24 * time.Hour),
			},
		}
		for _, c := range campaigns {
			if err := campaignRepo.UpsertCampaign(ctx, c); err != nil {
				return err
			}
		}

		steps := []model.Step{
			{
				CampaignID: seedInfoCampaign,
				Seq:        1,
				Content:    "Traffic peaks at 8:15, leaving 20 minutes earlier saves you time.",
			},
			{
				CampaignID: seedSurveyCampaign,
				Seq:        1,
				Content:    "How do you usually commute?",
				Choices:    model.Choices{{Key: "A", Label: "Car"}, {Key: "B", Label: "Bike"}},
				Branches: model.Branches{
					{Answers: []string{"A"}, Next: 2},
					{Next: model.StepComplete},
				},
			},
			{
				CampaignID: seedSurveyCampaign,
				Seq:        2,
				Content:    "Would you try a carpool?",
				Choices:    model.Choices{{Key: "Y", Label: "Yes"}, {Key: "N", Label: "No"}},
				Branches:   model.Branches{{Next: model.StepComplete}},
			},
		}
		for _, s := range steps {
			if err := campaignRepo.UpsertStep(ctx, s); err != nil {
				return err
			}
		}

		tx := repository.GetTx(ctx)
		for i := 0; i < numUsers; i++ {
			userID := int64(seedFirstUserID + i)
			_, err := tx.ExecContext(ctx, `
INSERT IGNORE INTO user_profile (id, language, timezone, notification_enabled, calendar_enabled)
VALUES (?, ?, ?, ?, ?)`, userID, "en", "UTC", i%5 != 0, i%3 == 0)
			if err != nil {
				return err
			}

			for _, campaignID := range []int64{seedInfoCampaign, seedSurveyCampaign} {
				_, err := assignmentRepo.InsertAssignment(ctx, model.Assignment{
					UserID:           userID,
					CampaignID:       campaignID,
					StepSeq:          1,
					Status:           model.AssignmentStatusPending,
					TargetDeliveryAt: sql.NullTime{Valid: true, Time: now},
				})
				if err == repository.ErrOpenAssignmentExists {
					continue
				}
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func seedDataCommand() *cobra.Command {
	var numUsers int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "insert demo campaigns, users and pending assignments",
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.Load()
			db := conf.MySQL.MustConnect(config.NewLogger(conf.Log))

			now := time.Now().UTC().Truncate(time.Second)
			err := seedData(context.Background(), repository.NewProvider(db), numUsers, now)
			if err != nil {
				panic(err)
			}
			fmt.Println("SEEDED USERS:", numUsers)
		},
	}
	cmd.Flags().IntVar(&numUsers, "users", 500, "number of demo users")
	return cmd
}
