package download

import (
	"github.com/Leonardo-Martella/youtube-dl-gui/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	Start()
	Stop()
	Enqueue(url string, opts model.RequestOptions) (*model.DownloadTask, error)
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask
	TasksDone(reset bool) int
}
