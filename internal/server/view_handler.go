package server

import (
	goerrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"motionview/internal/dao"
	"motionview/internal/gallery"
)

var errUnknownSession = goerrors.New("unknown session")

// session resolves the controller for the page, starting a new session
// (and its initial search) when the id is missing or evicted.
func (s *Server) session(c *gin.Context, id string) (string, *gallery.Controller, bool, error) {
	if ctrl, ok := s.sessions.Get(id); ok {
		return id, ctrl, false, nil
	}
	id, ctrl, err := s.sessions.Create()
	if err != nil {
		return "", nil, false, err
	}
	log := s.logger.WithField("session", id)
	log.Info("new page session")
	if in, ok := s.viewer.InitialInput(); ok {
		outcome := ctrl.Search(requestContext(c, id), in)
		log.Debugf("initial query outcome: %s", outcome)
	}
	return id, ctrl, true, nil
}

func (s *Server) handleIndex(c *gin.Context) {
	var req dao.SessionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	id, ctrl, created, err := s.session(c, req.Session)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	if created {
		c.Redirect(http.StatusSeeOther, sessionURL("/", id))
		return
	}
	s.renderPage(c, id, ctrl.View())
}

func (s *Server) handleSearch(c *gin.Context) {
	var req dao.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	ctrl, ok := s.sessions.Get(req.Session)
	if !ok {
		id, created, err := s.sessions.Create()
		if err != nil {
			s.writeError(c, http.StatusInternalServerError, err)
			return
		}
		req.Session, ctrl = id, created
	}
	outcome := ctrl.Search(requestContext(c, req.Session), req.Input)
	s.logger.WithField("session", req.Session).Debugf("search outcome: %s", outcome)
	c.Redirect(http.StatusSeeOther, sessionURL("/", req.Session))
}

func (s *Server) handleSelect(c *gin.Context) {
	var req dao.SelectRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	ctrl, ok := s.sessions.Get(req.Session)
	if !ok {
		s.writeError(c, http.StatusNotFound, errUnknownSession)
		return
	}
	if err := ctrl.Select(req.EventId, req.Snapshot); err != nil {
		if goerrors.Is(err, gallery.ErrUnknownEvent) || goerrors.Is(err, gallery.ErrUnknownSnapshot) {
			s.writeError(c, http.StatusNotFound, err)
			return
		}
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusSeeOther, sessionURL("/", req.Session))
}

func (s *Server) handleCloseModal(c *gin.Context) {
	var sess dao.SessionRequest
	if err := c.ShouldBindQuery(&sess); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	ctrl, ok := s.sessions.Get(sess.Session)
	if !ok {
		s.writeError(c, http.StatusNotFound, errUnknownSession)
		return
	}
	ctrl.CloseModal()
	c.Redirect(http.StatusSeeOther, sessionURL("/", sess.Session))
}

func (s *Server) handleSeek(c *gin.Context) {
	var sess dao.SessionRequest
	if err := c.ShouldBindQuery(&sess); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	var req dao.SeekRequest
	if err := c.ShouldBind(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	ctrl, ok := s.sessions.Get(sess.Session)
	if !ok {
		s.writeError(c, http.StatusNotFound, errUnknownSession)
		return
	}
	if err := ctrl.Seek(req.Position); err != nil {
		if goerrors.Is(err, gallery.ErrModalClosed) {
			s.writeError(c, http.StatusConflict, err)
			return
		}
		s.writeError(c, http.StatusInternalServerError, fmt.Errorf("seek: %w", err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleGetView(c *gin.Context) {
	var sess dao.SessionRequest
	if err := c.ShouldBindQuery(&sess); err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	ctrl, ok := s.sessions.Get(sess.Session)
	if !ok {
		s.writeError(c, http.StatusNotFound, errUnknownSession)
		return
	}
	c.JSON(http.StatusOK, dao.FromView(sess.Session, ctrl.View()))
}
