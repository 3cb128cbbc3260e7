package metrics

func (m *Metrics) IncrementPostCreated() {
	m.safeExecute("IncrementPostCreated", func() {
		m.PostCreatedTotal.Inc()
	})
}

func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// RecordLikeToggle counts a toggle on target ("post" or "comment") ending in the given state
func (m *Metrics) RecordLikeToggle(target string, liked bool) {
	m.safeExecute("RecordLikeToggle", func() {
		state := "unliked"
		if liked {
			state = "liked"
		}
		m.LikeToggledTotal.WithLabelValues(target, state).Inc()
	})
}

// RecordLikeConflict counts an insert rejected by the unique index
func (m *Metrics) RecordLikeConflict(target string) {
	m.safeExecute("RecordLikeConflict", func() {
		m.LikeConflictsTotal.WithLabelValues(target).Inc()
	})
}

func (m *Metrics) IncrementImageUploaded() {
	m.safeExecute("IncrementImageUploaded", func() {
		m.ImagesUploadedTotal.Inc()
	})
}

func (m *Metrics) AddImagesCleaned(n int) {
	m.safeExecute("AddImagesCleaned", func() {
		m.ImagesCleanedTotal.Add(float64(n))
	})
}

func (m *Metrics) SetPostsTotal(count int64) {
	m.safeExecute("SetPostsTotal", func() {
		m.PostsTotal.Set(float64(count))
	})
}

func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}

func (m *Metrics) SetLikesTotal(count int64) {
	m.safeExecute("SetLikesTotal", func() {
		m.LikesTotal.Set(float64(count))
	})
}
