// internal/system/scheduler.go
package system

import "sort"

// JobID — дескриптор запланированной задачи, 0 = нет задачи.
type JobID uint64

type job struct {
	id        JobID
	due       uint64
	interval  uint64 // 0 — однократная
	gen       uint64
	fn        func()
	cancelled bool
}

// Scheduler — очередь задач, считающая время в тиках. Заменяет
// таймеры реального времени: спавн и авто-волна детерминированы.
type Scheduler struct {
	now    uint64
	gen    uint64
	nextID JobID
	queue  []*job // по (due, id): FIFO для одного тика
	index  map[JobID]*job
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		nextID: 1,
		index:  make(map[JobID]*job),
	}
}

// Now — число выполненных Advance.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// Pending — сколько задач ещё ждут.
func (s *Scheduler) Pending() int {
	return len(s.index)
}

// After запускает fn один раз через delay тиков (минимум 1).
func (s *Scheduler) After(delay int, fn func()) JobID {
	return s.schedule(delay, 0, fn)
}

// Every запускает fn каждые interval тиков, первый раз через interval.
func (s *Scheduler) Every(interval int, fn func()) JobID {
	if interval < 1 {
		interval = 1
	}
	return s.schedule(interval, uint64(interval), fn)
}

func (s *Scheduler) schedule(delay int, interval uint64, fn func()) JobID {
	if delay < 1 {
		delay = 1
	}
	j := &job{
		id:       s.nextID,
		due:      s.now + uint64(delay),
		interval: interval,
		gen:      s.gen,
		fn:       fn,
	}
	s.nextID++
	s.index[j.id] = j
	s.insert(j)
	return j.id
}

func (s *Scheduler) insert(j *job) {
	i := sort.Search(len(s.queue), func(i int) bool {
		q := s.queue[i]
		return q.due > j.due || (q.due == j.due && q.id > j.id)
	})
	s.queue = append(s.queue, nil)
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = j
}

// Cancel снимает задачу. Можно вызывать из самой задачи.
func (s *Scheduler) Cancel(id JobID) bool {
	j, ok := s.index[id]
	if !ok {
		return false
	}
	j.cancelled = true
	delete(s.index, id)
	return true
}

// CancelAll снимает всё и меняет поколение: задача, пережившая сброс,
// не выполнится.
func (s *Scheduler) CancelAll() {
	for _, j := range s.queue {
		j.cancelled = true
	}
	s.gen++
	s.queue = nil
	clear(s.index)
}

// Advance продвигает время на тик и выполняет созревшие задачи.
// Возвращает число выполненных.
func (s *Scheduler) Advance() int {
	s.Step()
	return s.RunDue()
}

// Step начинает новый тик. Задачи, поставленные между Step и RunDue,
// отсчитывают задержку от этого тика.
func (s *Scheduler) Step() {
	s.now++
}

// RunDue выполняет задачи, срок которых наступил.
func (s *Scheduler) RunDue() int {
	fired := 0
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		j := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		if j.cancelled || j.gen != s.gen {
			continue
		}
		if j.interval == 0 {
			delete(s.index, j.id)
		}
		j.fn()
		fired++
		if j.interval > 0 && !j.cancelled && j.gen == s.gen {
			j.due += j.interval
			s.insert(j)
		}
	}
	return fired
}
