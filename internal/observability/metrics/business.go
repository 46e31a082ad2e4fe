package metrics

import "time"

// RecordArticlesFetched records the number of articles fetched from a source type.
func RecordArticlesFetched(sourceType string, count int) {
	ArticlesFetchedTotal.WithLabelValues(sourceType).Add(float64(count))
}

// RecordArticlesSaved records the number of articles persisted for a source type.
func RecordArticlesSaved(sourceType string, count int) {
	ArticlesSavedTotal.WithLabelValues(sourceType).Add(float64(count))
}

// RecordArticlesDuplicated records articles skipped because of URL deduplication.
func RecordArticlesDuplicated(count int) {
	ArticlesDuplicatedTotal.Add(float64(count))
}

// RecordArticleSummarized records the result of a summarization attempt.
// Status is "success" or "failure".
func RecordArticleSummarized(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	ArticlesSummarizedTotal.WithLabelValues(status).Inc()
}

// RecordSummarizationDuration records the time taken to summarize an article.
func RecordSummarizationDuration(duration time.Duration) {
	SummarizationDuration.Observe(duration.Seconds())
}

// RecordDigestGenerated records a digest generation attempt.
func RecordDigestGenerated(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	DigestsGeneratedTotal.WithLabelValues(status).Inc()
}

// RecordIngestDuration records a full ingestion pipeline run.
func RecordIngestDuration(sourceType string, duration time.Duration) {
	IngestDuration.WithLabelValues(sourceType).Observe(duration.Seconds())
}

// RecordContentFetch records a readability content fetch outcome:
// "success", "failure", or "skipped".
func RecordContentFetch(status string) {
	ContentFetchAttemptsTotal.WithLabelValues(status).Inc()
}
