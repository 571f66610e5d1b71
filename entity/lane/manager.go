package lane

import (
	"fmt"

	"github.com/F1-Guy/intersection-simulator/entity"
	"github.com/F1-Guy/intersection-simulator/utils/config"
	"github.com/samber/lo"
)

// LaneManager Lane管理器
// 功能：管理所有Lane实体，提供创建、按类别查找、更新与快照功能
type LaneManager struct {
	ctx entity.ITaskContext

	lanes []*Lane
}

// NewManager 创建Lane管理器实例
// 参数：ctx-任务上下文
// 返回：新创建的Lane管理器实例
func NewManager(ctx entity.ITaskContext) *LaneManager {
	return &LaneManager{
		ctx:   ctx,
		lanes: make([]*Lane, 0),
	}
}

// Init 初始化所有Lane
// 功能：根据配置描述创建所有Lane对象，保持配置顺序
// 参数：descriptors-车道配置列表
// 返回：类别字符串非法时返回error
func (m *LaneManager) Init(descriptors []config.LaneDescriptor) error {
	m.lanes = make([]*Lane, 0, len(descriptors))
	for i, d := range descriptors {
		class, err := entity.ParseLaneClass(d.Type)
		if err != nil {
			return fmt.Errorf("lane %d: %w", i, err)
		}
		m.lanes = append(m.lanes, newLane(m.ctx, class, d.Business))
	}
	return nil
}

// Lanes 获取全部车道（配置顺序）
func (m *LaneManager) Lanes() []entity.ILane {
	return lo.Map(m.lanes, func(l *Lane, _ int) entity.ILane { return l })
}

// ByClass 获取指定类别的车道（配置顺序）
func (m *LaneManager) ByClass(class entity.LaneClass) []entity.ILane {
	filtered := lo.Filter(m.lanes, func(l *Lane, _ int) bool { return l.class == class })
	return lo.Map(filtered, func(l *Lane, _ int) entity.ILane { return l })
}

// Update 更新阶段，执行所有Lane的队列更新
// 说明：顺序执行，必须在本tick的信号灯相位切换之后调用
func (m *LaneManager) Update() {
	for _, l := range m.lanes {
		l.Update()
	}
}

// Snapshot 生成全部车道当前状态的快照（配置顺序）
func (m *LaneManager) Snapshot() []entity.LaneSnapshot {
	return lo.Map(m.lanes, func(l *Lane, _ int) entity.LaneSnapshot { return l.Snapshot() })
}
