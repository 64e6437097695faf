// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"fmt"
)

func (s *ServerErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

type BearerAuth struct {
	Token string
	Roles []string
}

// GetToken returns the value of Token.
func (s *BearerAuth) GetToken() string {
	return s.Token
}

// GetRoles returns the value of Roles.
func (s *BearerAuth) GetRoles() []string {
	return s.Roles
}

// SetToken sets the value of Token.
func (s *BearerAuth) SetToken(val string) {
	s.Token = val
}

// SetRoles sets the value of Roles.
func (s *BearerAuth) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/ContentResponse
type ContentResponse struct {
	Kind     string `json:"kind"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Link     string `json:"link"`
	Markdown string `json:"markdown"`
}

// GetKind returns the value of Kind.
func (s *ContentResponse) GetKind() string {
	return s.Kind
}

// GetKey returns the value of Key.
func (s *ContentResponse) GetKey() string {
	return s.Key
}

// GetName returns the value of Name.
func (s *ContentResponse) GetName() string {
	return s.Name
}

// GetLink returns the value of Link.
func (s *ContentResponse) GetLink() string {
	return s.Link
}

// GetMarkdown returns the value of Markdown.
func (s *ContentResponse) GetMarkdown() string {
	return s.Markdown
}

// SetKind sets the value of Kind.
func (s *ContentResponse) SetKind(val string) {
	s.Kind = val
}

// SetKey sets the value of Key.
func (s *ContentResponse) SetKey(val string) {
	s.Key = val
}

// SetName sets the value of Name.
func (s *ContentResponse) SetName(val string) {
	s.Name = val
}

// SetLink sets the value of Link.
func (s *ContentResponse) SetLink(val string) {
	s.Link = val
}

// SetMarkdown sets the value of Markdown.
func (s *ContentResponse) SetMarkdown(val string) {
	s.Markdown = val
}

// Ref: #/components/schemas/Course
type Course struct {
	BaseUrl string `json:"baseUrl"`
	// Live, beta or test.
	Server string `json:"server"`
	ID     string `json:"id"`
}

// GetBaseUrl returns the value of BaseUrl.
func (s *Course) GetBaseUrl() string {
	return s.BaseUrl
}

// GetServer returns the value of Server.
func (s *Course) GetServer() string {
	return s.Server
}

// GetID returns the value of ID.
func (s *Course) GetID() string {
	return s.ID
}

// SetBaseUrl sets the value of BaseUrl.
func (s *Course) SetBaseUrl(val string) {
	s.BaseUrl = val
}

// SetServer sets the value of Server.
func (s *Course) SetServer(val string) {
	s.Server = val
}

// SetID sets the value of ID.
func (s *Course) SetID(val string) {
	s.ID = val
}

// Ref: #/components/schemas/Failure
type Failure struct {
	Resource string `json:"resource"`
	// Set for single item fetches, empty for collections.
	Key     string `json:"key"`
	Message string `json:"message"`
}

// GetResource returns the value of Resource.
func (s *Failure) GetResource() string {
	return s.Resource
}

// GetKey returns the value of Key.
func (s *Failure) GetKey() string {
	return s.Key
}

// GetMessage returns the value of Message.
func (s *Failure) GetMessage() string {
	return s.Message
}

// SetResource sets the value of Resource.
func (s *Failure) SetResource(val string) {
	s.Resource = val
}

// SetKey sets the value of Key.
func (s *Failure) SetKey(val string) {
	s.Key = val
}

// SetMessage sets the value of Message.
func (s *Failure) SetMessage(val string) {
	s.Message = val
}

// Ref: #/components/schemas/Match
type Match struct {
	ID string `json:"id"`
	// Assignment, Discussion, Quiz, Page or ModuleItem.
	Kind string `json:"kind"`
	// Assignment, discussion_topic, quiz, page, ExternalUrl or ExternalTool.
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	Link     string   `json:"link"`
	Snippets []string `json:"snippets"`
}

// GetID returns the value of ID.
func (s *Match) GetID() string {
	return s.ID
}

// GetKind returns the value of Kind.
func (s *Match) GetKind() string {
	return s.Kind
}

// GetType returns the value of Type.
func (s *Match) GetType() string {
	return s.Type
}

// GetName returns the value of Name.
func (s *Match) GetName() string {
	return s.Name
}

// GetLink returns the value of Link.
func (s *Match) GetLink() string {
	return s.Link
}

// GetSnippets returns the value of Snippets.
func (s *Match) GetSnippets() []string {
	return s.Snippets
}

// SetID sets the value of ID.
func (s *Match) SetID(val string) {
	s.ID = val
}

// SetKind sets the value of Kind.
func (s *Match) SetKind(val string) {
	s.Kind = val
}

// SetType sets the value of Type.
func (s *Match) SetType(val string) {
	s.Type = val
}

// SetName sets the value of Name.
func (s *Match) SetName(val string) {
	s.Name = val
}

// SetLink sets the value of Link.
func (s *Match) SetLink(val string) {
	s.Link = val
}

// SetSnippets sets the value of Snippets.
func (s *Match) SetSnippets(val []string) {
	s.Snippets = val
}

// Ref: #/components/schemas/SearchResponse
type SearchResponse struct {
	RunId    string    `json:"runId"`
	Course   Course    `json:"course"`
	Query    []string  `json:"query"`
	Matches  []Match   `json:"matches"`
	Searched int       `json:"searched"`
	Failures []Failure `json:"failures"`
}

// GetRunId returns the value of RunId.
func (s *SearchResponse) GetRunId() string {
	return s.RunId
}

// GetCourse returns the value of Course.
func (s *SearchResponse) GetCourse() Course {
	return s.Course
}

// GetQuery returns the value of Query.
func (s *SearchResponse) GetQuery() []string {
	return s.Query
}

// GetMatches returns the value of Matches.
func (s *SearchResponse) GetMatches() []Match {
	return s.Matches
}

// GetSearched returns the value of Searched.
func (s *SearchResponse) GetSearched() int {
	return s.Searched
}

// GetFailures returns the value of Failures.
func (s *SearchResponse) GetFailures() []Failure {
	return s.Failures
}

// SetRunId sets the value of RunId.
func (s *SearchResponse) SetRunId(val string) {
	s.RunId = val
}

// SetCourse sets the value of Course.
func (s *SearchResponse) SetCourse(val Course) {
	s.Course = val
}

// SetQuery sets the value of Query.
func (s *SearchResponse) SetQuery(val []string) {
	s.Query = val
}

// SetMatches sets the value of Matches.
func (s *SearchResponse) SetMatches(val []Match) {
	s.Matches = val
}

// SetSearched sets the value of Searched.
func (s *SearchResponse) SetSearched(val int) {
	s.Searched = val
}

// SetFailures sets the value of Failures.
func (s *SearchResponse) SetFailures(val []Failure) {
	s.Failures = val
}

// Ref: #/components/schemas/ServerError
type ServerError struct {
	// Error kind: NOT_FOUND, UNAUTHORIZED, FORBIDDEN, BAD_REQUEST, TIMEOUT,
	// UNAVAILABLE, RATE_LIMITED, UPSTREAM, MALFORMED or INTERNAL.
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetCode returns the value of Code.
func (s *ServerError) GetCode() string {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *ServerError) GetMessage() string {
	return s.Message
}

// SetCode sets the value of Code.
func (s *ServerError) SetCode(val string) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *ServerError) SetMessage(val string) {
	s.Message = val
}

// ServerErrorStatusCode wraps ServerError with StatusCode.
type ServerErrorStatusCode struct {
	StatusCode int
	Response   ServerError
}

// GetStatusCode returns the value of StatusCode.
func (s *ServerErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ServerErrorStatusCode) GetResponse() ServerError {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ServerErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ServerErrorStatusCode) SetResponse(val ServerError) {
	s.Response = val
}
