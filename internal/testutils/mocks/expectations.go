// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-arena/internal/enemies"
	enemiesmock "github.com/KirkDiggler/rpg-arena/internal/enemies/mock"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

// ExpectEnemyIdentity lets the battle read the enemy's ID, type, level and
// position as often as it likes
func ExpectEnemyIdentity(enemy *enemiesmock.MockEnemy, id string, level int) {
	enemy.EXPECT().GetID().Return(id).AnyTimes()
	enemy.EXPECT().GetType().Return(enemies.EntityType).AnyTimes()
	enemy.EXPECT().Level().Return(level).AnyTimes()
	enemy.EXPECT().Position().Return(testutils.TestEnemyX, testutils.TestEnemyY).AnyTimes()
}

// ExpectEnemyIdle lets the enemy idle for n ticks at full HP. The first ticks
// drain the given bullet batches, the rest drain nothing.
func ExpectEnemyIdle(enemy *enemiesmock.MockEnemy, n int, drained ...[]entities.Bullet) {
	enemy.EXPECT().Tick(gomock.Any(), gomock.Any()).Return(enemies.ActionIdle).Times(n)
	for _, batch := range drained {
		enemy.EXPECT().DrainBullets().Return(batch)
	}
	if rest := n - len(drained); rest > 0 {
		enemy.EXPECT().DrainBullets().Return(nil).Times(rest)
	}
	enemy.EXPECT().Hurt(gomock.Any()).Times(n)
	enemy.EXPECT().HP().Return(testutils.TestEnemyHP).AnyTimes()
}

// ExpectEnemyDiesAfter lets the enemy idle for n ticks and then report its
// death on the next one
func ExpectEnemyDiesAfter(enemy *enemiesmock.MockEnemy, n int, drained ...[]entities.Bullet) {
	var prev *gomock.Call
	for i := 0; i <= n; i++ {
		action := enemies.ActionIdle
		if i == n {
			action = enemies.ActionDie
		}
		call := enemy.EXPECT().Tick(gomock.Any(), gomock.Any()).Return(action)
		if prev != nil {
			call.After(prev)
		}
		prev = call
	}

	for _, batch := range drained {
		enemy.EXPECT().DrainBullets().Return(batch)
	}
	if rest := n - len(drained); rest > 0 {
		enemy.EXPECT().DrainBullets().Return(nil).Times(rest)
	}
	if n > 0 {
		enemy.EXPECT().Hurt(gomock.Any()).Times(n)
	}
	enemy.EXPECT().HP().Return(testutils.TestEnemyHP).AnyTimes()
}
