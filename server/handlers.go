package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
	"github.com/keisuke-yamauch1/group-feeder/pkg/feed"
)

// listFeedsHandler returns all registered feeds
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.db.GetFeeds(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

// createFeedRequest is the payload for feed registration
type createFeedRequest struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	GroupID int64  `json:"groupId,omitempty"`
}

// createFeedHandler registers a feed by URL. The URL is validated, the feed is
// fetched once to derive its title, and the record is upserted so repeated
// registrations of the same URL are harmless.
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := feed.ValidateURL(req.URL); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	title := req.Title
	description := ""
	if title == "" {
		var err error
		title, description, err = s.previewer.Preview(ctx, req.URL)
		if err != nil {
			lgr.Printf("[WARN] failed to preview feed %s: %v", req.URL, err)
		}
		if title == "" {
			// fall back to the host part of the URL
			if u, uerr := url.Parse(req.URL); uerr == nil && u.Host != "" {
				title = u.Host
			} else {
				title = req.URL
			}
		}
	}

	fd, created, err := s.db.UpsertFeed(ctx, req.URL, title, description)
	if err != nil {
		lgr.Printf("[ERROR] failed to upsert feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if req.GroupID != 0 {
		if err := s.db.AddFeedsToGroup(ctx, req.GroupID, []int64{fd.ID}); err != nil {
			lgr.Printf("[ERROR] failed to add feed %d to group %d: %v", fd.ID, req.GroupID, err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	renderJSON(w, r, code, fd)
}

// deleteFeedHandler removes a feed and its articles
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid feed ID"), http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteFeed(r.Context(), id); err != nil {
		lgr.Printf("[ERROR] failed to delete feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// refreshHandler runs one fetch batch over all due feeds and returns the
// aggregate summary
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.scheduler.RunOnce(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] refresh batch failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, summary)
}

// listArticlesHandler returns articles filtered by feed or group, newest
// first. Stored HTML passes through the sanitizer before serving.
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.ArticleFilter{}

	q := r.URL.Query()
	if v := q.Get("feed_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid feed_id"), http.StatusBadRequest)
			return
		}
		filter.FeedID = id
	}
	if v := q.Get("group_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid group_id"), http.StatusBadRequest)
			return
		}
		filter.GroupID = id
	}
	filter.UnreadOnly = q.Get("unread") == "true"
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	articles, err := s.db.GetArticles(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to get articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	for i := range articles {
		articles[i].Description = s.sanitizer.Sanitize(articles[i].Description)
		articles[i].Content = s.sanitizer.Sanitize(articles[i].Content)
	}

	renderJSON(w, r, http.StatusOK, articles)
}

// readStatusRequest is the payload for batch read-state updates
type readStatusRequest struct {
	ArticleIDs []int64 `json:"articleIds"`
	Read       bool    `json:"read"`
}

// readStatusHandler marks a batch of articles read or unread
func (s *Server) readStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req readStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if len(req.ArticleIDs) == 0 {
		renderError(w, r, fmt.Errorf("articleIds is required"), http.StatusBadRequest)
		return
	}

	if err := s.db.SetReadState(r.Context(), req.ArticleIDs, req.Read); err != nil {
		lgr.Printf("[ERROR] failed to set read state: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int{"updated": len(req.ArticleIDs)})
}

// unreadCountHandler returns the total number of unread articles
func (s *Server) unreadCountHandler(w http.ResponseWriter, r *http.Request) {
	count, err := s.db.UnreadCount(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to count unread articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int{"count": count})
}

// listGroupsHandler returns all groups
func (s *Server) listGroupsHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := s.db.GetGroups(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get groups: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, groups)
}

// groupRequest is the payload for group create and rename
type groupRequest struct {
	Name string `json:"name"`
}

// createGroupHandler creates a new group
func (s *Server) createGroupHandler(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		renderError(w, r, fmt.Errorf("group name is required"), http.StatusBadRequest)
		return
	}

	group := &domain.Group{Name: req.Name}
	if err := s.db.CreateGroup(r.Context(), group); err != nil {
		lgr.Printf("[ERROR] failed to create group: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, group)
}

// renameGroupHandler updates a group's name
func (s *Server) renameGroupHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid group ID"), http.StatusBadRequest)
		return
	}

	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		renderError(w, r, fmt.Errorf("group name is required"), http.StatusBadRequest)
		return
	}

	if err := s.db.RenameGroup(r.Context(), id, req.Name); err != nil {
		lgr.Printf("[ERROR] failed to rename group: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"name": req.Name})
}

// deleteGroupHandler removes a group, detaching its feeds
func (s *Server) deleteGroupHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid group ID"), http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteGroup(r.Context(), id); err != nil {
		lgr.Printf("[ERROR] failed to delete group: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// groupFeedsHandler returns the feeds attached to a group
func (s *Server) groupFeedsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid group ID"), http.StatusBadRequest)
		return
	}

	feeds, err := s.db.GetGroupFeeds(r.Context(), id)
	if err != nil {
		lgr.Printf("[ERROR] failed to get group feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

// addGroupFeedsRequest is the payload for attaching feeds to a group
type addGroupFeedsRequest struct {
	FeedIDs []int64 `json:"feedIds"`
}

// addGroupFeedsHandler attaches feeds to a group, skipping pairs that are
// already present
func (s *Server) addGroupFeedsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid group ID"), http.StatusBadRequest)
		return
	}

	var req addGroupFeedsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if len(req.FeedIDs) == 0 {
		renderError(w, r, fmt.Errorf("feedIds is required"), http.StatusBadRequest)
		return
	}

	if err := s.db.AddFeedsToGroup(r.Context(), id, req.FeedIDs); err != nil {
		lgr.Printf("[ERROR] failed to add feeds to group %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int{"added": len(req.FeedIDs)})
}

// removeGroupFeedHandler detaches a feed from a group
func (s *Server) removeGroupFeedHandler(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid group ID"), http.StatusBadRequest)
		return
	}
	feedID, err := strconv.ParseInt(r.PathValue("feedID"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid feed ID"), http.StatusBadRequest)
		return
	}

	if err := s.db.RemoveFeedFromGroup(r.Context(), groupID, feedID); err != nil {
		lgr.Printf("[ERROR] failed to remove feed %d from group %d: %v", feedID, groupID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
