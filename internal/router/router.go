package router

import (
	"Travel_Mate/internal/config"
	"Travel_Mate/internal/handler"
	"Travel_Mate/internal/middleware"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg *config.Config, tokens *pkg.TokenManager) *gin.Engine {
	r := gin.Default()

	smtpCfg := pkg.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}
	tourClient := pkg.NewTourClient(cfg.TourAPI.BaseURL, cfg.TourAPI.ServiceKey, cfg.TourAPI.Timeout)

	auth := handler.NewAuthHandler(tokens)
	user := handler.NewUserHandler(smtpCfg)
	planner := handler.NewPlannerHandler(tourClient)
	schedule := handler.NewScheduleHandler()
	post := handler.NewPostHandler()
	report := handler.NewReportHandler()
	block := handler.NewBlockHandler()
	admin := handler.NewAdminHandler(smtpCfg)

	// 全局认证，免认证路径在中间件里配置
	authSvc := service.NewAuthService(tokens)
	r.Use(middleware.Auth(tokens, authSvc.Reissue))

	// 认证相关
	r.GET("/", auth.Check)
	r.POST("/join", auth.Join)
	r.POST("/login", auth.Login)
	r.POST("/reissue", auth.Reissue)

	// 行程规划：旅游 API 代理 + 行程保存
	homeGroup := r.Group("/home")
	{
		homeGroup.GET("/apiList/:areaCode/:pageNo/:contentTypeId", planner.Places)
		homeGroup.GET("/apiDetail/:contentId", planner.Detail)
		homeGroup.GET("/apiSearch/:metroId/:pageNo/:contentTypeId/:keyword", planner.Search)
		homeGroup.POST("/saveSchedule", schedule.Save)
	}

	// 我的页面
	mypageGroup := r.Group("/mypage")
	{
		mypageGroup.GET("/profile", user.Profile)
		mypageGroup.POST("/checkPassword", user.CheckPassword)
		mypageGroup.PATCH("/updatePassword", user.UpdatePassword)
		mypageGroup.PATCH("/updateProfile", user.UpdateProfile)
		mypageGroup.GET("/schedules", schedule.ListMine)
		mypageGroup.GET("/schedules/:scheduleId", schedule.View)
		mypageGroup.PATCH("/schedules/updateSchedule", schedule.Update)
		mypageGroup.POST("/schedules/deleteSchedules", schedule.Delete)
		mypageGroup.GET("/posts", post.ListMine)
		mypageGroup.POST("/posts/deletePosts", post.DeleteMine)
	}

	// 同行招募板块
	communityGroup := r.Group("/community")
	{
		communityGroup.POST("/load", post.Load)
		communityGroup.POST("/submitPost", post.Submit)
		communityGroup.GET("/communityList", post.List)
		communityGroup.GET("/communityListByView", post.ListByView)
		communityGroup.GET("/communitySearch", post.Search)
		communityGroup.GET("/communityDetail/:userId/:postId", post.Detail)
		communityGroup.GET("/communityDetailGuest/:userId/:postId", post.DetailGuest)
		communityGroup.POST("/postUpdate/:postId", post.Update)
		communityGroup.DELETE("/postDelete/:postId", post.Delete)
		communityGroup.POST("/completedPost/:postId", post.Complete)
	}

	// 举报和拉黑
	reportGroup := r.Group("/report")
	{
		reportGroup.POST("/add", report.Add)
		reportGroup.POST("/cancel", report.Cancel)
		reportGroup.GET("/user", report.ListMine)
	}
	blockGroup := r.Group("/block")
	{
		blockGroup.POST("/add", block.Add)
		blockGroup.POST("/delete", block.Delete)
		blockGroup.GET("/user", block.ListMine)
	}

	// 管理端
	adminGroup := r.Group("/admin")
	{
		adminGroup.GET("/users", admin.ListUsers)
		adminGroup.GET("/users/:userId", admin.GetUser)
		adminGroup.PATCH("/users/role", admin.UpdateRole)
		adminGroup.GET("/schedules", admin.ListSchedules)
		adminGroup.GET("/schedules/:scheduleId", admin.ViewSchedule)
		adminGroup.POST("/schedules/delete", admin.DeleteSchedules)
		adminGroup.GET("/posts", admin.ListPosts)
		adminGroup.POST("/posts/delete", admin.DeletePosts)
		adminGroup.PATCH("/posts/exposure", admin.UpdateExposure)
		adminGroup.GET("/reports", admin.ListReports)
		adminGroup.PATCH("/reports", admin.ResolveReport)
		adminGroup.GET("/blocks", admin.ListBlocks)
		adminGroup.POST("/blocks/delete", admin.DeleteBlocks)
	}

	return r
}
