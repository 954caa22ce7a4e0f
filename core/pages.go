package core

import (
	"bytes"
	"net/http"
)

const htmlContentType = "text/html; charset=utf-8"

func renderPage(s *Site, status int, page, title string, data PageData) (Response, error) {
	var buf bytes.Buffer
	if err := s.RenderPage(&buf, page, title, data); err != nil {
		return Response{}, err
	}
	return Response{Status: status, ContentType: htmlContentType, Body: buf.Bytes()}, nil
}

func handleHome(s *Site, _ *http.Request, _ map[string]string) (Response, error) {
	return renderPage(s, http.StatusOK, "home", s.Content.Home.Title, s.pageData())
}

// Sections below accept and ignore any sub-path.

func handleNews(s *Site, _ *http.Request, _ map[string]string) (Response, error) {
	return renderPage(s, http.StatusOK, "news", s.Content.News.Title, s.pageData())
}

func handleManagement(s *Site, _ *http.Request, _ map[string]string) (Response, error) {
	return renderPage(s, http.StatusOK, "management", s.Content.Management.Title, s.pageData())
}

func handleAbout(s *Site, _ *http.Request, _ map[string]string) (Response, error) {
	return renderPage(s, http.StatusOK, "about", s.Content.About.Title, s.pageData())
}

func handleContacts(s *Site, _ *http.Request, _ map[string]string) (Response, error) {
	return renderPage(s, http.StatusOK, "contacts", s.Content.Contacts.Title, s.pageData())
}

func handleBranches(s *Site, _ *http.Request, _ map[string]string) (Response, error) {
	return renderPage(s, http.StatusOK, "branches", s.Content.Branches.Title, s.pageData())
}

// handleBranch renders the not-found fragment with status 200 for unknown
// cities.
func handleBranch(s *Site, _ *http.Request, params map[string]string) (Response, error) {
	data := s.pageData()

	branch, err := s.Branches.Lookup(params["city"])
	if err != nil {
		if !IsNotFoundError(err) {
			return Response{}, err
		}
		return renderPage(s, http.StatusOK, "branch-not-found", s.Content.Branches.NotFound.Title, data)
	}

	data.Branch = branch
	return renderPage(s, http.StatusOK, "branch", branch.Title, data)
}

func renderNotFound(s *Site) (Response, error) {
	return renderPage(s, http.StatusNotFound, "not-found", s.Content.NotFound.Title, s.pageData())
}
