package service

import (
	"context"

	"safelink/backend/internal/model"
)

var quickCommands = []model.QuickCommand{
	{ID: "helmet", Text: "안전모 착용하세요", Icon: "🪖", Category: model.CategorySafety},
	{ID: "stop", Text: "작업 중지! 대기하세요", Icon: "🛑", Category: model.CategoryEmergency},
	{ID: "break", Text: "휴식 시간입니다", Icon: "☕", Category: model.CategoryGeneral},
	{ID: "start", Text: "작업 시작하세요", Icon: "🚀", Category: model.CategoryWork},
	{ID: "danger", Text: "위험 구역 접근 금지", Icon: "⚠️", Category: model.CategoryEmergency},
	{ID: "check", Text: "안전 장비 점검하세요", Icon: "🔍", Category: model.CategorySafety},
}

// 按名称排序
var sites = []model.Site{
	{ID: 1, Name: "과천G-TOWN", Region: "경기", Active: true},
	{ID: 2, Name: "과천자이", Region: "경기", Active: true},
	{ID: 3, Name: "광교지산", Region: "경기", Active: true},
	{ID: 4, Name: "당산디엘", Region: "서울", Active: true},
	{ID: 5, Name: "대우왕숙", Region: "경기", Active: true},
	{ID: 6, Name: "동탄대우", Region: "경기", Active: true},
	{ID: 7, Name: "블랑써밋", Region: "서울", Active: true},
	{ID: 8, Name: "부산대방2차", Region: "부산", Active: true},
	{ID: 9, Name: "부산대방3차", Region: "부산", Active: true},
	{ID: 10, Name: "복대자이", Region: "충북", Active: true},
	{ID: 11, Name: "삼송 데이타센터", Region: "경기", Active: true},
	{ID: 12, Name: "삼척", Region: "강원", Active: true},
	{ID: 13, Name: "산성대우", Region: "경기", Active: true},
	{ID: 14, Name: "성수동처", Region: "서울", Active: true},
	{ID: 15, Name: "안성현대차", Region: "경기", Active: true},
	{ID: 16, Name: "여수디엘", Region: "전남", Active: true},
	{ID: 17, Name: "왕숙대우", Region: "경기", Active: true},
	{ID: 18, Name: "울산현대", Region: "울산", Active: true},
	{ID: 19, Name: "원주무실", Region: "강원", Active: true},
	{ID: 20, Name: "의정부대우", Region: "경기", Active: true},
	{ID: 21, Name: "이천자이", Region: "경기", Active: true},
	{ID: 22, Name: "진접디엘", Region: "경기", Active: true},
	{ID: 23, Name: "청주테크노폴리스", Region: "충북", Active: true},
	{ID: 24, Name: "청주효성", Region: "충북", Active: true},
	{ID: 25, Name: "탕정대우", Region: "충남", Active: true},
	{ID: 26, Name: "탕정디엘", Region: "충남", Active: true},
}

// CatalogService serves the fixed lists shown on the manager screen.
type CatalogService interface {
	QuickCommands(ctx context.Context) []model.QuickCommand
	Sites(ctx context.Context, activeOnly bool) []model.Site
}

type catalogService struct{}

func NewCatalogService() CatalogService {
	return catalogService{}
}

func (catalogService) QuickCommands(ctx context.Context) []model.QuickCommand {
	out := make([]model.QuickCommand, len(quickCommands))
	copy(out, quickCommands)
	return out
}

func (catalogService) Sites(ctx context.Context, activeOnly bool) []model.Site {
	out := make([]model.Site, 0, len(sites))
	for _, s := range sites {
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, s)
	}
	return out
}
