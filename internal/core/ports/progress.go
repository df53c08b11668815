package ports

// Progress is a best-effort sink for load progress. Nothing it does affects the graph.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type Progress interface {
	Start()
	SetTopic(topic string)
	Set(current, total int)
	Add(delta int)
	Show()
	Stop()
}
