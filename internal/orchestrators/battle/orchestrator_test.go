package battle_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-arena/internal/enemies"
	enemiesmock "github.com/KirkDiggler/rpg-arena/internal/enemies/mock"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/input"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/vmath"
	"github.com/KirkDiggler/rpg-arena/internal/skills"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
	"github.com/KirkDiggler/rpg-arena/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-arena/internal/testutils/mocks"
)

const frame = 100 * time.Millisecond

type BattleTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ctx     context.Context
	bus     events.EventBus
	idGen   idgen.Generator
	factory *enemiesmock.MockFactory
	enemy   *enemiesmock.MockEnemy
	book    *skills.Book
}

func (s *BattleTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.idGen = idgen.NewSequential("test")
	s.factory = enemiesmock.NewMockFactory(s.ctrl)
	s.enemy = enemiesmock.NewMockEnemy(s.ctrl)

	var err error
	s.book, err = skills.NewBook(&skills.Config{Roller: dice.DefaultRoller})
	s.Require().NoError(err)

	mocks.ExpectEnemyIdentity(s.enemy, testutils.TestEnemyID, 0)
}

func (s *BattleTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBattleSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}

// newBattle creates a battle whose first stage is s.enemy
func (s *BattleTestSuite) newBattle(stats *entities.PlayerStats, arena vmath.Rect) battle.Service {
	s.factory.EXPECT().Create(0).Return(s.enemy, true)

	svc, err := battle.NewOrchestrator(&battle.Config{
		EventBus:     s.bus,
		EnemyFactory: s.factory,
		SkillBook:    s.book,
		IDGenerator:  s.idGen,
		PlayerStats:  stats,
		Arena:        arena,
	})
	s.Require().NoError(err)
	return svc
}

func (s *BattleTestSuite) queue(svc battle.Service, evs ...input.Event) {
	_, err := svc.QueueEvents(s.ctx, &battle.QueueEventsInput{Events: evs})
	s.Require().NoError(err)
}

func (s *BattleTestSuite) tick(svc battle.Service, delta time.Duration) *battle.TickOutput {
	out, err := svc.Tick(s.ctx, &battle.TickInput{Delta: delta})
	s.Require().NoError(err)
	return out
}

func (s *BattleTestSuite) state(svc battle.Service) *battle.GetStateOutput {
	out, err := svc.GetState(s.ctx, &battle.GetStateInput{})
	s.Require().NoError(err)
	return out
}

func (s *BattleTestSuite) TestNewOrchestrator_RequiresDependencies() {
	_, err := battle.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = battle.NewOrchestrator(&battle.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "EventBus")
	s.Contains(err.Error(), "EnemyFactory")
	s.Contains(err.Error(), "SkillBook")
	s.Contains(err.Error(), "IDGenerator")
}

func (s *BattleTestSuite) TestNewOrchestrator_RejectsBadStatsAndArena() {
	_, err := battle.NewOrchestrator(&battle.Config{
		EventBus:     s.bus,
		EnemyFactory: s.factory,
		SkillBook:    s.book,
		IDGenerator:  idgen.NewSequential("test"),
		PlayerStats:  &entities.PlayerStats{HP: 0, Speed: -1, Radius: 1},
		Arena:        vmath.Rect{MinX: 5, MinY: 0, MaxX: 1, MaxY: 10},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "PlayerStats.HP")
	s.Contains(err.Error(), "PlayerStats.Speed")
	s.Contains(err.Error(), "Arena")
}

func (s *BattleTestSuite) TestInitialState() {
	svc := s.newBattle(nil, vmath.Rect{})
	s.enemy.EXPECT().HP().Return(10).AnyTimes()

	st := s.state(svc)
	s.True(st.Running)
	s.Equal(battle.OutcomeOngoing, st.Outcome)
	s.Equal(0, st.Stage)
	s.Equal(10, st.Player.HP)
	s.Equal(20, st.Player.MP)
	s.Equal(0.0, st.Player.X)
	s.Equal(0.0, st.Player.Y)
	s.Empty(st.Bullets)
	s.Require().NotNil(st.Enemy)
	s.Equal(testutils.TestEnemyID, st.Enemy.ID)
	s.Equal(10, st.Enemy.HP)
	s.Equal([]string{"Stage 1: enemy level 0 appears"}, st.Logs)
}

func (s *BattleTestSuite) TestShoot_SpendsMPAndSpawnsBullet() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 1)

	s.queue(svc, input.Shoot{Target: &vmath.Point{X: 0, Y: 10}})
	out := s.tick(svc, 0)

	s.Equal(1, out.Bullets)
	st := s.state(svc)
	s.Equal(19, st.Player.MP)
	s.Require().Len(st.Bullets, 1)
	b := st.Bullets[0]
	s.True(b.IsPlayer)
	s.InDelta(0.0, b.X, 1e-9)
	s.InDelta(entities.PlayerBulletOffset, b.Y, 1e-9)
	s.InDelta(0.0, b.VX, 1e-9)
	s.InDelta(entities.PlayerBulletSpeed, b.VY, 1e-9)
	s.Contains(st.Logs, "Player fired a bullet")
}

func (s *BattleTestSuite) TestShoot_NotEnoughMP() {
	svc := s.newBattle(builders.NewPlayerStatsBuilder().WithMP(0).Build(), vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 1)

	s.queue(svc, input.Cast{Skill: skills.Spread}, input.Shoot{})
	s.tick(svc, frame)

	st := s.state(svc)
	s.Empty(st.Bullets)
	s.Equal(0, st.Player.MP)
	s.Empty(st.Player.Skills, "skills are cleared even when the shot fails")
	s.Contains(st.Logs, "Not enough MP to shoot")
}

func (s *BattleTestSuite) TestShoot_LastRequestWins() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 1)

	s.queue(svc,
		input.Shoot{Target: &vmath.Point{X: 0, Y: 10}},
		input.Shoot{Target: &vmath.Point{X: 10, Y: 0}},
	)
	s.tick(svc, 0)

	st := s.state(svc)
	s.Equal(19, st.Player.MP)
	s.Require().Len(st.Bullets, 1)
	s.InDelta(entities.PlayerBulletSpeed, st.Bullets[0].VX, 1e-9)
	s.InDelta(0.0, st.Bullets[0].VY, 1e-9)
}

func (s *BattleTestSuite) TestShoot_UsesFacingWithoutTarget() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 2)

	s.queue(svc, input.Move{DX: -1})
	s.tick(svc, frame)
	s.queue(svc, input.Shoot{})
	s.tick(svc, 0)

	st := s.state(svc)
	s.Require().Len(st.Bullets, 1)
	s.InDelta(-entities.PlayerBulletSpeed, st.Bullets[0].VX, 1e-9)
	s.InDelta(-1.0-entities.PlayerBulletOffset, st.Bullets[0].X, 1e-9)
}

func (s *BattleTestSuite) TestMove_SumsDeltasAndScalesBySpeed() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 1)

	s.queue(svc, input.Move{DX: 1}, input.Move{DY: 1}, input.Move{DX: 1})
	s.tick(svc, frame)

	st := s.state(svc)
	s.InDelta(2.0, st.Player.X, 1e-9)
	s.InDelta(1.0, st.Player.Y, 1e-9)
	s.InDelta(2/math.Sqrt(5), st.Player.FaceX, 1e-9)
	s.InDelta(1/math.Sqrt(5), st.Player.FaceY, 1e-9)
}

func (s *BattleTestSuite) TestMove_CancellingDeltasKeepFacing() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 2)

	s.queue(svc, input.Move{DY: 1})
	s.tick(svc, frame)
	s.queue(svc, input.Move{DX: 1}, input.Move{DX: -1})
	s.tick(svc, frame)

	st := s.state(svc)
	s.InDelta(0.0, st.Player.X, 1e-9)
	s.InDelta(1.0, st.Player.Y, 1e-9)
	s.InDelta(0.0, st.Player.FaceX, 1e-9)
	s.InDelta(1.0, st.Player.FaceY, 1e-9)
}

func (s *BattleTestSuite) TestBulletsIntegrateByDelta() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 2)

	s.queue(svc, input.Shoot{Target: &vmath.Point{X: 0, Y: -10}})
	s.tick(svc, 0)
	s.tick(svc, 250*time.Millisecond)

	st := s.state(svc)
	s.Require().Len(st.Bullets, 1)
	s.InDelta(-entities.PlayerBulletOffset-2.5, st.Bullets[0].Y, 1e-9)
}

func (s *BattleTestSuite) TestEnemyBullets_HitPlayerOncePerBullet() {
	svc := s.newBattle(nil, vmath.Rect{})

	// stationary bullets sitting on the player, plus one that misses
	hits := []entities.Bullet{
		testutils.EnemyBulletAt(0, 0),
		testutils.EnemyBulletAt(0.5, 0.5),
		testutils.EnemyBulletAt(20, 20),
	}
	mocks.ExpectEnemyIdle(s.enemy, 2, hits)

	s.tick(svc, frame)
	s.Equal(10, s.state(svc).Player.HP, "drained bullets only collide on the next tick")

	out := s.tick(svc, frame)
	s.Equal(8, out.PlayerHP)
	s.Equal(1, out.Bullets)

	st := s.state(svc)
	s.Equal(8, st.Player.HP)
	s.Contains(st.Logs, "Player took 2 hit(s), HP 8")
}

func (s *BattleTestSuite) TestPlayerBullets_HurtEnemy() {
	svc := s.newBattle(nil, vmath.Rect{})
	s.enemy.EXPECT().Tick(gomock.Any(), gomock.Any()).Return(enemies.ActionIdle)
	s.enemy.EXPECT().DrainBullets().Return(nil)
	s.enemy.EXPECT().Hurt(gomock.Any()).Do(func(bullets []entities.Bullet) {
		s.Require().Len(bullets, 1)
		s.True(bullets[0].IsPlayer)
		bullets[0].PendingRemoval = true
	})
	gomock.InOrder(
		s.enemy.EXPECT().HP().Return(10),
		s.enemy.EXPECT().HP().Return(9).AnyTimes(),
	)

	s.queue(svc, input.Shoot{Target: &vmath.Point{X: 30, Y: 30}})
	out := s.tick(svc, frame)

	s.Equal(0, out.Bullets, "flagged bullets are pruned at the end of the tick")
	s.Contains(s.state(svc).Logs, "Enemy took 1 hit(s), HP 9")
}

func (s *BattleTestSuite) TestEnemyDies_AdvancesStage() {
	svc := s.newBattle(nil, vmath.Rect{})
	next := enemiesmock.NewMockEnemy(s.ctrl)
	mocks.ExpectEnemyIdentity(next, "enemy_2", 1)
	next.EXPECT().HP().Return(testutils.TestEnemyHP).AnyTimes()

	mocks.ExpectEnemyDiesAfter(s.enemy, 1, []entities.Bullet{testutils.EnemyBulletAt(-50, -50)})
	s.factory.EXPECT().Create(1).Return(next, true)

	s.queue(svc, input.Shoot{Target: &vmath.Point{X: 0, Y: -10}})
	out := s.tick(svc, 0)
	s.False(out.EnemyDied)
	s.Equal(2, out.Bullets)

	out = s.tick(svc, 0)
	s.True(out.EnemyDied)
	s.Equal(1, out.Stage)
	s.Equal(battle.OutcomeOngoing, out.Outcome)

	st := s.state(svc)
	s.Require().Len(st.Bullets, 1, "only player bullets survive a stage change")
	s.True(st.Bullets[0].IsPlayer)
	s.Require().NotNil(st.Enemy)
	s.Equal("enemy_2", st.Enemy.ID)
	s.Equal(1, st.Enemy.Level)
	s.Contains(st.Logs, "Enemy level 0 defeated")
	s.Contains(st.Logs, "Stage 2: enemy level 1 appears")
}

func (s *BattleTestSuite) TestVictory_KeepsPlayerBulletsMoving() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyDiesAfter(s.enemy, 1)
	s.factory.EXPECT().Create(1).Return(nil, false)

	s.queue(svc, input.Shoot{Target: &vmath.Point{X: 0, Y: -10}})
	s.tick(svc, 0)
	out := s.tick(svc, 0)
	s.Equal(battle.OutcomeVictory, out.Outcome)
	s.True(out.Outcome.Terminal())

	// no enemy left to tick; the remaining bullet keeps flying
	s.tick(svc, time.Second)
	st := s.state(svc)
	s.Nil(st.Enemy)
	s.Equal(battle.OutcomeVictory, st.Outcome)
	s.Require().Len(st.Bullets, 1)
	s.InDelta(-entities.PlayerBulletOffset-entities.PlayerBulletSpeed, st.Bullets[0].Y, 1e-9)
	s.Contains(st.Logs, "All stages cleared")
}

func (s *BattleTestSuite) TestVictory_IgnoresInput() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyDiesAfter(s.enemy, 0)
	s.factory.EXPECT().Create(1).Return(nil, false)

	s.queue(svc, input.Shoot{Target: &vmath.Point{X: 0, Y: -10}})
	out := s.tick(svc, 0)
	s.Require().Equal(battle.OutcomeVictory, out.Outcome)
	s.Equal(1, out.Bullets)

	s.queue(svc, input.Cast{Skill: skills.Nova}, input.Shoot{}, input.Move{DX: 1})
	out = s.tick(svc, frame)
	s.Equal(battle.OutcomeVictory, out.Outcome)
	s.Equal(1, out.Bullets, "no new shot after the last stage")

	st := s.state(svc)
	s.Equal(19, st.Player.MP)
	s.Equal(0.0, st.Player.X)
	s.Empty(st.Player.Skills)
	s.Equal("All stages cleared", st.Logs[len(st.Logs)-1])

	pending, err := svc.QueueEvents(s.ctx, &battle.QueueEventsInput{})
	s.Require().NoError(err)
	s.Equal(0, pending.Pending, "the victory tick still drained the queue")
}

func (s *BattleTestSuite) TestDefeat_WinsOverSameTickVictory() {
	svc := s.newBattle(builders.NewPlayerStatsBuilder().WithHP(1).Build(), vmath.Rect{})
	// the bullet drained on the first tick lands as the enemy dies; the
	// factory is never asked for another stage
	mocks.ExpectEnemyDiesAfter(s.enemy, 1, []entities.Bullet{testutils.EnemyBulletAt(0, 0)})

	s.tick(svc, frame)
	out := s.tick(svc, frame)
	s.True(out.EnemyDied)
	s.Equal(battle.OutcomeDefeat, out.Outcome)
	s.Equal(0, out.PlayerHP)

	st := s.state(svc)
	s.Nil(st.Enemy)
	s.Contains(st.Logs, "Player was defeated")
	s.Contains(st.Logs, "Enemy level 0 defeated")
	s.NotContains(st.Logs, "All stages cleared")
}

func (s *BattleTestSuite) TestDefeat_FreezesWorld() {
	svc := s.newBattle(builders.NewPlayerStatsBuilder().WithHP(1).WithMP(5).Build(), vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 2, []entities.Bullet{testutils.EnemyBulletAt(0, 0)})

	s.tick(svc, frame)
	out := s.tick(svc, frame)
	s.Equal(battle.OutcomeDefeat, out.Outcome)
	s.Equal(0, out.PlayerHP)

	before := s.state(svc)
	s.queue(svc, input.Move{DX: 1}, input.Shoot{})
	out = s.tick(svc, time.Second)
	s.Equal(battle.OutcomeDefeat, out.Outcome)

	after := s.state(svc)
	s.Equal(before.Player, after.Player)
	s.Equal(before.Bullets, after.Bullets)
	s.Equal(before.Logs, after.Logs)
	s.Equal(before.Tick+1, after.Tick)
	s.Contains(after.Logs, "Player was defeated")

	pending, err := svc.QueueEvents(s.ctx, &battle.QueueEventsInput{Events: []input.Event{input.Shoot{}}})
	s.Require().NoError(err)
	s.Equal(1, pending.Pending, "the frozen tick still drained the queue")
}

func (s *BattleTestSuite) TestSkills_Spread() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 1)

	s.queue(svc, input.Cast{Skill: skills.Spread}, input.Shoot{Target: &vmath.Point{X: 0, Y: 10}})
	out := s.tick(svc, 0)

	s.Equal(3, out.Bullets)
	st := s.state(svc)
	s.Equal(18, st.Player.MP)
	s.Empty(st.Player.Skills)
	s.Contains(st.Logs, "Player fired 3 bullets")
}

func (s *BattleTestSuite) TestSkills_UnknownAndFizzled() {
	svc := s.newBattle(builders.NewPlayerStatsBuilder().WithMP(2).Build(), vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 1)

	s.queue(svc,
		input.Cast{Skill: "laser"},
		input.Cast{Skill: skills.Nova},
		input.Shoot{Target: &vmath.Point{X: 0, Y: 10}},
	)
	out := s.tick(svc, 0)

	s.Equal(1, out.Bullets)
	st := s.state(svc)
	s.Equal(1, st.Player.MP, "a fizzled skill costs nothing")
	s.Contains(st.Logs, `Unknown skill "laser"`)
	s.Contains(st.Logs, "Not enough MP to cast nova")
}

func (s *BattleTestSuite) TestSkills_PersistUntilNextShot() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 2)

	s.queue(svc, input.Cast{Skill: skills.Nova})
	s.tick(svc, 0)
	s.Equal([]string{skills.Nova}, s.state(svc).Player.Skills)

	s.queue(svc, input.Shoot{})
	out := s.tick(svc, 0)
	s.Equal(8, out.Bullets)
	s.Equal(16, s.state(svc).Player.MP)
}

func (s *BattleTestSuite) TestArena_ClampsPlayerAndCullsBullets() {
	arena := vmath.Rect{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}
	svc := s.newBattle(nil, arena)
	mocks.ExpectEnemyIdle(s.enemy, 2)

	s.queue(svc, input.Move{DX: 1})
	s.tick(svc, time.Second)
	st := s.state(svc)
	s.InDelta(5.0, st.Player.X, 1e-9)

	s.queue(svc, input.Shoot{Target: &vmath.Point{X: 5, Y: 10}})
	out := s.tick(svc, time.Second)
	s.Equal(0, out.Bullets)
}

func (s *BattleTestSuite) TestTick_RejectsNegativeDelta() {
	svc := s.newBattle(nil, vmath.Rect{})

	_, err := svc.Tick(s.ctx, &battle.TickInput{Delta: -time.Millisecond})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.Tick(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *BattleTestSuite) TestQuit_StopsTheBattle() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 1)
	s.tick(svc, frame)

	out, err := svc.Quit(s.ctx, &battle.QuitInput{})
	s.Require().NoError(err)
	s.Equal(uint64(1), out.Ticks)

	_, err = svc.Tick(s.ctx, &battle.TickInput{Delta: frame})
	s.True(errors.IsFailedPrecondition(err))

	_, err = svc.QueueEvents(s.ctx, &battle.QueueEventsInput{Events: []input.Event{input.Shoot{}}})
	s.True(errors.IsFailedPrecondition(err))

	_, err = svc.Quit(s.ctx, &battle.QuitInput{})
	s.True(errors.IsFailedPrecondition(err))

	st := s.state(svc)
	s.False(st.Running)
	s.Equal("Battle ended", st.Logs[len(st.Logs)-1])
}

func (s *BattleTestSuite) TestTick_WaitingOnQuitFails() {
	svc := s.newBattle(nil, vmath.Rect{})

	entered := make(chan struct{})
	release := make(chan struct{})
	s.enemy.EXPECT().Tick(gomock.Any(), gomock.Any()).DoAndReturn(func(time.Duration, *entities.Player) enemies.Action {
		close(entered)
		<-release
		return enemies.ActionIdle
	})
	s.enemy.EXPECT().DrainBullets().Return(nil)
	s.enemy.EXPECT().Hurt(gomock.Any())
	s.enemy.EXPECT().HP().Return(testutils.TestEnemyHP).AnyTimes()

	tickErr := func() <-chan error {
		done := make(chan error, 1)
		go func() {
			_, err := svc.Tick(s.ctx, &battle.TickInput{Delta: frame})
			done <- err
		}()
		return done
	}

	// the first tick holds the state lock inside the enemy update
	first := tickErr()
	<-entered

	// the second tick passes the running check and waits for the lock
	second := tickErr()
	time.Sleep(20 * time.Millisecond)

	quit := make(chan error, 1)
	go func() {
		_, err := svc.Quit(s.ctx, &battle.QuitInput{})
		quit <- err
	}()
	s.Eventually(func() bool {
		_, err := svc.QueueEvents(s.ctx, &battle.QueueEventsInput{})
		return errors.IsFailedPrecondition(err)
	}, time.Second, time.Millisecond)

	close(release)
	s.NoError(<-first)
	s.True(errors.IsFailedPrecondition(<-second))
	s.NoError(<-quit)

	st := s.state(svc)
	s.Equal(uint64(1), st.Tick)
	s.Equal("Battle ended", st.Logs[len(st.Logs)-1])
}

func (s *BattleTestSuite) TestQueueEvents_RejectsNil() {
	svc := s.newBattle(nil, vmath.Rect{})

	_, err := svc.QueueEvents(s.ctx, &battle.QueueEventsInput{Events: []input.Event{input.Shoot{}, nil}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *BattleTestSuite) TestGetState_IsACopy() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 1)

	s.queue(svc, input.Cast{Skill: skills.Spread})
	s.tick(svc, 0)

	st := s.state(svc)
	st.Player.Skills[0] = "tampered"
	st.Player.HP = 0
	st.Logs[0] = "tampered"

	again := s.state(svc)
	s.Equal([]string{skills.Spread}, again.Player.Skills)
	s.Equal(10, again.Player.HP)
	s.NotEqual("tampered", again.Logs[0])
}

func (s *BattleTestSuite) TestGetState_LogLimit() {
	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 3)

	for i := 0; i < 3; i++ {
		s.queue(svc, input.Shoot{})
		s.tick(svc, 0)
	}

	out, err := svc.GetState(s.ctx, &battle.GetStateInput{LogLimit: 2})
	s.Require().NoError(err)
	s.Equal([]string{"Player fired a bullet", "Player fired a bullet"}, out.Logs)
	s.Len(s.state(svc).Logs, 4)

	_, err = svc.GetState(s.ctx, &battle.GetStateInput{LogLimit: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *BattleTestSuite) TestEvents_ReachExternalSubscribers() {
	var fired []events.Event
	s.bus.SubscribeFunc(battle.EventShotFired, 0, func(_ context.Context, ev events.Event) error {
		fired = append(fired, ev)
		return nil
	})

	svc := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 1)
	s.queue(svc, input.Cast{Skill: skills.Spread}, input.Shoot{})
	s.tick(svc, 0)

	s.Require().Len(fired, 1)
	s.Equal("player", fired[0].Source().GetType())
	ev, ok := fired[0].(*battle.Event)
	s.Require().True(ok)
	s.Equal(3, ev.Int(battle.KeyBullets))
	s.NotEmpty(ev.BattleID)
}

func (s *BattleTestSuite) TestEvents_BattlesSharingABusKeepSeparateLogs() {
	first := s.newBattle(nil, vmath.Rect{})
	second := s.newBattle(nil, vmath.Rect{})
	mocks.ExpectEnemyIdle(s.enemy, 1)

	s.queue(first, input.Shoot{})
	s.tick(first, 0)

	s.Contains(s.state(first).Logs, "Player fired a bullet")
	s.NotContains(s.state(second).Logs, "Player fired a bullet")
}

// TestBattle_ClearsEveryStage plays the real stage enemies from point blank
// range, shooting every frame until the last stage falls
func TestBattle_ClearsEveryStage(t *testing.T) {
	ctx := context.Background()
	book, err := skills.NewBook(&skills.Config{Roller: dice.DefaultRoller})
	require.NoError(t, err)

	svc, err := battle.NewOrchestrator(&battle.Config{
		EventBus:     events.NewBus(),
		EnemyFactory: enemies.NewFactory(idgen.NewSequential("enemy")),
		SkillBook:    book,
		IDGenerator:  idgen.NewSequential("battle"),
		PlayerStats:  builders.NewPlayerStatsBuilder().At(30, 25).WithMP(100).Build(),
	})
	require.NoError(t, err)

	target := &vmath.Point{X: 30, Y: 30}
	var out *battle.TickOutput
	for i := 0; i < 60; i++ {
		_, err = svc.QueueEvents(ctx, &battle.QueueEventsInput{Events: []input.Event{input.Shoot{Target: target}}})
		require.NoError(t, err)

		out, err = svc.Tick(ctx, &battle.TickInput{Delta: frame})
		require.NoError(t, err)
		if out.Outcome.Terminal() {
			break
		}
	}

	require.NotNil(t, out)
	assert.Equal(t, battle.OutcomeVictory, out.Outcome)
	assert.Equal(t, enemies.StageCount, out.Stage)
	assert.Equal(t, 10, out.PlayerHP, "every enemy falls before its first volley")

	st, err := svc.GetState(ctx, &battle.GetStateInput{})
	require.NoError(t, err)
	assert.Nil(t, st.Enemy)
	assert.Contains(t, st.Logs, "Enemy level 2 defeated")
	assert.Contains(t, st.Logs, "All stages cleared")
}
