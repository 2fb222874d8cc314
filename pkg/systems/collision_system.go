package systems

import (
	"log"
	"math"
	"math/rand"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/decker502/shmup/pkg/components"
	"github.com/decker502/shmup/pkg/config"
	"github.com/decker502/shmup/pkg/ecs"
	"github.com/decker502/shmup/pkg/entities"
	"github.com/decker502/shmup/pkg/game"
	"github.com/decker502/shmup/pkg/types"
)

// spaceMargin 碰撞空间向屏幕四周扩展的距离
// 出生带和隐身位置都在屏幕外，扩展后这些形状仍落在网格内
const spaceMargin = 256

// 碰撞空间单元格大小（像素）
const cellSize = 32

var (
	tagMob     = resolv.NewTag("mob")
	tagBullet  = resolv.NewTag("bullet")
	tagPowerup = resolv.NewTag("powerup")
	tagPlayer  = resolv.NewTag("player")
)

// CollisionSystem 在所有实体更新之后解析碰撞、计分和道具效果
//
// 每帧按顺序执行三个阶段：
//  1. 子弹与陨石（矩形对矩形）
//  2. 陨石与飞船（圆形对圆形，飞船隐身时跳过）
//  3. 飞船与道具（矩形对矩形）
//
// resolv 空间只按包围盒做网格粗筛，是否相交由 ECS 组件精确判定。
// 形状在每个阶段开始前与 ECS 位置同步，
// 因此本帧新生成的实体（例如掉落的道具）可以在后续阶段参与检测
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	session       *game.Session
	players       *PlayerSystem
	effects       *PowerupEffects
	sound         game.SoundPlayer
	rng           *rand.Rand

	space  *resolv.Space
	shapes map[ecs.EntityID]resolv.IShape
	owners map[resolv.IShape]ecs.EntityID
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(
	em *ecs.EntityManager,
	cfg *config.GameConfig,
	session *game.Session,
	players *PlayerSystem,
	sound game.SoundPlayer,
	rng *rand.Rand,
) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		config:        cfg,
		session:       session,
		players:       players,
		effects:       NewPowerupEffects(em, cfg, players, sound, rng),
		sound:         sound,
		rng:           rng,
		space: resolv.NewSpace(
			cfg.Screen.Width+2*spaceMargin,
			cfg.Screen.Height+2*spaceMargin,
			cellSize, cellSize,
		),
		shapes: make(map[ecs.EntityID]resolv.IShape),
		owners: make(map[resolv.IShape]ecs.EntityID),
	}
}

// Update 执行一次完整的碰撞解析
func (s *CollisionSystem) Update(deltaTime float64) {
	s.sync()
	s.resolveBulletMob()

	s.sync()
	s.resolveMobPlayer()

	s.sync()
	s.resolvePlayerPowerup()
}

// ShapeCount 返回空间中登记的形状数量
func (s *CollisionSystem) ShapeCount() int {
	return len(s.owners)
}

// sync 让 resolv 空间与 ECS 保持一致
// 删除已销毁或被标记删除的实体的形状，为新实体创建形状，并刷新所有形状的位置
func (s *CollisionSystem) sync() {
	for id, shape := range s.shapes {
		if !s.entityManager.Exists(id) {
			s.space.Remove(shape)
			delete(s.owners, shape)
			delete(s.shapes, id)
		}
	}

	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		coll, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		shape, ok := s.shapes[id]
		if !ok {
			shape = s.newShape(id, coll)
			s.shapes[id] = shape
			s.owners[shape] = id
			s.space.Add(shape)
		}
		shape.SetPosition(toSpace(pos.X, pos.Y))
	}
}

// toSpace 将屏幕坐标转换为碰撞空间坐标
func toSpace(x, y float64) (float64, float64) {
	return x + spaceMargin, y + spaceMargin
}

// newShape 创建覆盖实体矩形和圆形的包围盒
func (s *CollisionSystem) newShape(id ecs.EntityID, coll *components.CollisionComponent) resolv.IShape {
	d := 2 * math.Max(coll.Radius, coll.HullRadius)
	w, h := math.Max(coll.Width, d), math.Max(coll.Height, d)
	shape := resolv.NewRectangleFromTopLeft(0, 0, w, h)

	switch {
	case ecs.HasComponent[*components.MobComponent](s.entityManager, id):
		shape.Tags().Set(tagMob)
	case ecs.HasComponent[*components.BulletComponent](s.entityManager, id):
		shape.Tags().Set(tagBullet)
	case ecs.HasComponent[*components.PowerupComponent](s.entityManager, id):
		shape.Tags().Set(tagPowerup)
	case ecs.HasComponent[*components.PlayerComponent](s.entityManager, id):
		shape.Tags().Set(tagPlayer)
	}
	return shape
}

// body 返回实体的位置和碰撞组件
func (s *CollisionSystem) body(id ecs.EntityID) (*components.PositionComponent, *components.CollisionComponent, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	coll, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	return pos, coll, ok
}

// overlapping 返回与实体 id 相交且带有 tag 的实体，按实体 ID 升序
// resolv 给出相邻网格中的候选，hit 对每个候选做精确判定
// 已被标记删除的实体会被跳过
func (s *CollisionSystem) overlapping(id ecs.EntityID, tag resolv.Tags, hit func(other ecs.EntityID) bool) []ecs.EntityID {
	shape, ok := s.shapes[id]
	if !ok {
		return nil
	}

	seen := make(map[ecs.EntityID]bool)
	shape.SelectTouchingCells(1).FilterShapes().ByTags(tag).ForEach(func(other resolv.IShape) bool {
		otherID, ok := s.owners[other]
		if ok && !seen[otherID] && s.entityManager.Exists(otherID) && hit(otherID) {
			seen[otherID] = true
		}
		return true
	})

	result := make([]ecs.EntityID, 0, len(seen))
	for otherID := range seen {
		result = append(result, otherID)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// boxHit 返回判断两个实体矩形是否相交的函数
func (s *CollisionSystem) boxHit(id ecs.EntityID) func(other ecs.EntityID) bool {
	pos, coll, ok := s.body(id)
	return func(other ecs.EntityID) bool {
		otherPos, otherColl, otherOK := s.body(other)
		return ok && otherOK && BoxesOverlap(coll, pos.X, pos.Y, otherColl, otherPos.X, otherPos.Y)
	}
}

// BoxesOverlap 两个以位置为中心的轴对齐矩形是否相交，仅边界相接不算
func BoxesOverlap(a *components.CollisionComponent, ax, ay float64, b *components.CollisionComponent, bx, by float64) bool {
	return a.Left(ax) < b.Right(bx) && b.Left(bx) < a.Right(ax) &&
		a.Top(ay) < b.Bottom(by) && b.Top(by) < a.Bottom(ay)
}

// CirclesOverlap 圆心距不超过半径之和即相交，一个圆包含另一个圆也算
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	dx, dy := ax-bx, ay-by
	return dx*dx+dy*dy <= (ar+br)*(ar+br)
}

// CircleBoxOverlap 圆与以 (bx, by) 为中心的矩形是否相交，按矩形上离圆心最近的点判定
func CircleBoxOverlap(cx, cy, r float64, box *components.CollisionComponent, bx, by float64) bool {
	nx := math.Max(box.Left(bx), math.Min(cx, box.Right(bx)))
	ny := math.Max(box.Top(by), math.Min(cy, box.Bottom(by)))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}

// resolveBulletMob 子弹与陨石，按陨石贴图矩形判定
// 每颗子弹最多消耗于一个陨石；一个陨石被多颗子弹同时击中只计一次分
func (s *CollisionSystem) resolveBulletMob() {
	mobs := ecs.GetEntitiesWith1[*components.MobComponent](s.entityManager)
	for _, mobID := range mobs {
		hit := false
		for _, bulletID := range s.overlapping(mobID, tagBullet, s.boxHit(mobID)) {
			// 同一颗子弹可能同时覆盖多个陨石，被前一个陨石消耗后不再生效
			if s.entityManager.IsMarkedForDestroy(bulletID) {
				continue
			}
			s.entityManager.DestroyEntity(bulletID)
			hit = true
		}
		if hit {
			s.killMobByBullet(mobID)
		}
	}
}

func (s *CollisionSystem) killMobByBullet(mobID ecs.EntityID) {
	mob, _ := ecs.GetComponent[*components.MobComponent](s.entityManager, mobID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, mobID)

	if s.session.AddScore(MobScore(mob.Radius)) {
		log.Printf("[CollisionSystem] Difficulty increased to %d", s.session.Difficulty)
	}

	if sounds := s.config.Explosion.Sounds; len(sounds) > 0 {
		s.sound.PlaySound(sounds[s.rng.Intn(len(sounds))])
	}
	if _, err := entities.NewExplosion(s.entityManager, s.config, types.ExplosionLarge, pos.X, pos.Y); err != nil {
		log.Printf("[CollisionSystem] Failed to create explosion: %v", err)
	}

	if entities.Chance(s.rng, s.config.Powerup.DropChance) {
		powerupType := types.AllPowerupTypes[s.rng.Intn(len(types.AllPowerupTypes))]
		if _, err := entities.NewPowerup(s.entityManager, s.config, powerupType, pos.X, pos.Y); err != nil {
			log.Printf("[CollisionSystem] Failed to create powerup: %v", err)
		}
	}

	s.replaceMob(mobID)
}

// MobScore 击落陨石的得分：半径越小分数越高
func MobScore(radius int) int {
	return 50 - radius
}

// replaceMob 删除陨石并补充一个新的
func (s *CollisionSystem) replaceMob(mobID ecs.EntityID) {
	s.entityManager.DestroyEntity(mobID)
	if _, err := entities.NewMob(s.entityManager, s.config, s.rng); err != nil {
		log.Printf("[CollisionSystem] Failed to create mob: %v", err)
	}
}

// resolveMobPlayer 陨石与飞船，按飞船外壳圆判定
// 陨石为圆形时圆对圆，否则圆对矩形
// 护盾耗尽后本阶段剩余的相撞陨石仍会被替换，但不再造成伤害
func (s *CollisionSystem) resolveMobPlayer() {
	playerID := s.session.PlayerID
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok || player.Hidden {
		return
	}
	shield, ok := ecs.GetComponent[*components.ShieldComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	playerPos, playerColl, ok := s.body(playerID)
	if !ok || playerColl.HullRadius <= 0 {
		return
	}

	hullHit := func(mobID ecs.EntityID) bool {
		pos, coll, ok := s.body(mobID)
		if !ok {
			return false
		}
		if coll.Shape == components.ShapeCircle {
			return CirclesOverlap(playerPos.X, playerPos.Y, playerColl.HullRadius, pos.X, pos.Y, coll.Radius)
		}
		return CircleBoxOverlap(playerPos.X, playerPos.Y, playerColl.HullRadius, coll, pos.X, pos.Y)
	}

	for _, mobID := range s.overlapping(playerID, tagMob, hullHit) {
		mob, _ := ecs.GetComponent[*components.MobComponent](s.entityManager, mobID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, mobID)

		if !player.Hidden {
			if _, err := entities.NewExplosion(s.entityManager, s.config, types.ExplosionSmall, pos.X, pos.Y); err != nil {
				log.Printf("[CollisionSystem] Failed to create explosion: %v", err)
			}
			if shield.Damage(2 * mob.Radius) {
				s.killPlayer(playerID)
			}
		}

		s.replaceMob(mobID)
	}
}

func (s *CollisionSystem) killPlayer(playerID ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)

	id, err := entities.NewExplosion(s.entityManager, s.config, types.ExplosionPlayer, pos.X, pos.Y)
	if err != nil {
		log.Printf("[CollisionSystem] Failed to create explosion: %v", err)
	} else {
		s.session.DeathExplosionID = id
	}
	s.players.LoseLife(playerID)
}

// resolvePlayerPowerup 飞船与道具（矩形对矩形）
func (s *CollisionSystem) resolvePlayerPowerup() {
	playerID := s.session.PlayerID
	for _, id := range s.overlapping(playerID, tagPowerup, s.boxHit(playerID)) {
		powerup, _ := ecs.GetComponent[*components.PowerupComponent](s.entityManager, id)
		s.entityManager.DestroyEntity(id)
		s.effects.Apply(playerID, powerup.Type)
	}
}
