package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spigell/interview-coach/internal/assessment"
	"github.com/spigell/interview-coach/internal/catalog"
	"github.com/spigell/interview-coach/internal/session"
)

const maxQuestionCount = 50

type questionsResponse struct {
	Role      catalog.RoleBucket `json:"role"`
	Level     catalog.Level      `json:"level"`
	Questions []catalog.Question `json:"questions"`
}

type interviewRequest struct {
	Answers        []string `json:"answers" binding:"required"`
	JobRole        string   `json:"job_role"`
	CVKeywords     []string `json:"cv_keywords"`
	ExpectedSkills []string `json:"expected_skills"`
}

type resumeRequest struct {
	Resume         string `json:"resume" binding:"required"`
	JobDescription string `json:"job_description"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"catalog_version":  s.catalog.Version(),
		"personas_version": s.personas.Version(),
	})
}

func (s *Server) listPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"personas": s.personas.List()})
}

func (s *Server) listQuestions(c *gin.Context) {
	role := strings.TrimSpace(c.Query("role"))
	if role == "" {
		badRequest(c, "role is required")
		return
	}

	count := session.DefaultQuestionCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxQuestionCount {
			badRequest(c, "count must be between 1 and "+strconv.Itoa(maxQuestionCount))
			return
		}
		count = n
	}

	bucket := catalog.DetectRoleType(role)
	level := catalog.DetectLevel(role)
	c.JSON(http.StatusOK, questionsResponse{
		Role:      bucket,
		Level:     level,
		Questions: s.catalog.QuestionsForInterview(s.src, bucket, level, count),
	})
}

func (s *Server) scoreInterview(c *gin.Context) {
	var req interviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	skills := req.ExpectedSkills
	if len(skills) == 0 {
		skills = s.catalog.ExpectedSkills(catalog.DetectRoleType(req.JobRole))
	}

	c.JSON(http.StatusOK, s.answers.Score(req.Answers, assessment.Context{
		JobRole:        req.JobRole,
		CVKeywords:     req.CVKeywords,
		ExpectedSkills: skills,
	}))
}

func (s *Server) scoreResume(c *gin.Context) {
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, s.resumes.Score(req.Resume, req.JobDescription))
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
