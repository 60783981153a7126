package download

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Leonardo-Martella/youtube-dl-gui/internal/config"
	"github.com/Leonardo-Martella/youtube-dl-gui/internal/model"
	"github.com/Leonardo-Martella/youtube-dl-gui/internal/platform"
)

// Queue and retry constants
const (
	QueueCapacity = 64

	// Wait between attempts while the network is unreachable
	OfflineRetryDelay = 1 * time.Second
)

// Service handles download operations by invoking the external
// youtube-dl binary, one download at a time in queue order.
type Service struct {
	binPath string
	store   *config.Store

	tasks      map[string]*model.DownloadTask
	tasksMutex sync.RWMutex
	queue      chan *model.DownloadTask
	tasksDone  int
	onUpdate   func(*model.DownloadTask) // callback for UI updates

	cancel  context.CancelFunc
	stopped chan struct{}

	// runCommand launches the downloader; replaced in tests
	runCommand func(ctx context.Context, binPath string, args []string) error

	// connected reports internet availability; replaced in tests
	connected func() bool
}

// NewService creates a new download service. binPath is the resolved
// path of the external downloader binary.
func NewService(binPath string, store *config.Store) *Service {
	return &Service{
		binPath:    binPath,
		store:      store,
		tasks:      make(map[string]*model.DownloadTask),
		queue:      make(chan *model.DownloadTask, QueueCapacity),
		stopped:    make(chan struct{}),
		runCommand: runDownloader,
		connected:  platform.InternetAvailable,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// Start launches the worker goroutine
func (s *Service) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.worker(ctx)
}

// Stop cancels the in-flight download, drains nothing further from the
// queue, and waits for the worker to exit.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.stopped
}

// Enqueue adds a new download task to the queue
func (s *Service) Enqueue(url string, opts model.RequestOptions) (*model.DownloadTask, error) {
	if url == "" {
		return nil, fmt.Errorf("url must not be empty")
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Check for duplicate URLs
	for _, task := range s.tasks {
		if task.URL == url && !task.Status.IsFinished() {
			return nil, fmt.Errorf("task already queued for URL: %s", url)
		}
	}

	task := &model.DownloadTask{
		ID:         uuid.NewString(),
		URL:        url,
		Options:    opts,
		Status:     model.TaskStatusPending,
		EnqueuedAt: time.Now(),
	}

	select {
	case s.queue <- task:
	default:
		return nil, fmt.Errorf("download queue is full")
	}

	s.tasks[task.ID] = task
	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// TasksDone returns the number of tasks finished since the last reset.
// The UI polls it to drop completed items from the visible queue.
func (s *Service) TasksDone(reset bool) int {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	done := s.tasksDone
	if reset {
		s.tasksDone = 0
	}
	return done
}

// worker processes queued tasks one at a time until the context is cancelled
func (s *Service) worker(ctx context.Context) {
	defer close(s.stopped)

	for {
		select {
		case <-ctx.Done():
			return
		case task := <-s.queue:
			s.runTask(ctx, task)

			s.tasksMutex.Lock()
			s.tasksDone++
			s.tasksMutex.Unlock()
		}
	}
}

// runTask executes a single download, retrying while the network is down
func (s *Service) runTask(ctx context.Context, task *model.DownloadTask) {
	s.setStatus(task, model.TaskStatusDownloading)

	// Settings are read once per download so mid-download preference
	// edits apply from the next item on.
	cfg := s.store.Load()
	args := append(InvocationArgs(cfg, task.Options), FlagNewline, task.URL)

	for {
		s.tasksMutex.Lock()
		task.Attempts++
		s.tasksMutex.Unlock()

		err := s.runCommand(ctx, s.binPath, args)
		if err == nil {
			s.finishTask(task, model.TaskStatusCompleted, "")
			return
		}

		if ctx.Err() != nil {
			s.finishTask(task, model.TaskStatusStopped, "")
			return
		}

		// Connection loss: wait and retry the same item. Anything else
		// means the URL or options are probably invalid, so move on.
		if s.connected() {
			log.Printf("Download failed for %s: %v", task.URL, err)
			s.finishTask(task, model.TaskStatusError, err.Error())
			return
		}

		s.setStatus(task, model.TaskStatusRetrying)
		select {
		case <-time.After(OfflineRetryDelay):
		case <-ctx.Done():
			s.finishTask(task, model.TaskStatusStopped, "")
			return
		}
		s.setStatus(task, model.TaskStatusDownloading)
	}
}

// setStatus updates a task status under lock and notifies the UI
func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// finishTask records the terminal state of a task
func (s *Service) finishTask(task *model.DownloadTask, status model.TaskStatus, lastError string) {
	s.tasksMutex.Lock()
	task.Status = status
	task.LastError = lastError
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// runDownloader launches the external downloader and waits for it
func runDownloader(ctx context.Context, binPath string, args []string) error {
	cmd := exec.CommandContext(ctx, binPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", binPath, err, lastOutputLine(output))
	}
	return nil
}

// lastOutputLine extracts the final non-empty line of process output,
// which is where youtube-dl prints its error summary.
func lastOutputLine(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	line := strings.TrimSpace(lines[len(lines)-1])
	if line == "" {
		return "no output"
	}
	return line
}
