package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

var (
	CategoryServiceListCategoriesProcedure = procedure(CategoryServiceName, "ListCategories")
	CategoryServiceAddCategoryProcedure    = procedure(CategoryServiceName, "AddCategory")
	CategoryServiceDeleteCategoryProcedure = procedure(CategoryServiceName, "DeleteCategory")
	CategoryServiceRenameCategoryProcedure = procedure(CategoryServiceName, "RenameCategory")
)

// CategoryServiceHandler is implemented by the server.
type CategoryServiceHandler interface {
	ListCategories(context.Context, *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error)
	AddCategory(context.Context, *connect.Request[AddCategoryRequest]) (*connect.Response[AddCategoryResponse], error)
	DeleteCategory(context.Context, *connect.Request[DeleteCategoryRequest]) (*connect.Response[DeleteCategoryResponse], error)
	RenameCategory(context.Context, *connect.Request[RenameCategoryRequest]) (*connect.Response[RenameCategoryResponse], error)
}

func NewCategoryServiceHandler(svc CategoryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route(CategoryServiceName, map[string]http.Handler{
		CategoryServiceListCategoriesProcedure: connect.NewUnaryHandler(CategoryServiceListCategoriesProcedure, svc.ListCategories, opts...),
		CategoryServiceAddCategoryProcedure:    connect.NewUnaryHandler(CategoryServiceAddCategoryProcedure, svc.AddCategory, opts...),
		CategoryServiceDeleteCategoryProcedure: connect.NewUnaryHandler(CategoryServiceDeleteCategoryProcedure, svc.DeleteCategory, opts...),
		CategoryServiceRenameCategoryProcedure: connect.NewUnaryHandler(CategoryServiceRenameCategoryProcedure, svc.RenameCategory, opts...),
	})
}

// CategoryServiceClient is a client for the flightlog.v1.CategoryService service.
type CategoryServiceClient struct {
	listCategories *connect.Client[ListCategoriesRequest, ListCategoriesResponse]
	addCategory    *connect.Client[AddCategoryRequest, AddCategoryResponse]
	deleteCategory *connect.Client[DeleteCategoryRequest, DeleteCategoryResponse]
	renameCategory *connect.Client[RenameCategoryRequest, RenameCategoryResponse]
}

func NewCategoryServiceClient(httpClient connect.HTTPClient, url string, opts ...connect.ClientOption) *CategoryServiceClient {
	url = baseURL(url)
	opts = clientOptions(opts)
	return &CategoryServiceClient{
		listCategories: connect.NewClient[ListCategoriesRequest, ListCategoriesResponse](httpClient, url+CategoryServiceListCategoriesProcedure, opts...),
		addCategory:    connect.NewClient[AddCategoryRequest, AddCategoryResponse](httpClient, url+CategoryServiceAddCategoryProcedure, opts...),
		deleteCategory: connect.NewClient[DeleteCategoryRequest, DeleteCategoryResponse](httpClient, url+CategoryServiceDeleteCategoryProcedure, opts...),
		renameCategory: connect.NewClient[RenameCategoryRequest, RenameCategoryResponse](httpClient, url+CategoryServiceRenameCategoryProcedure, opts...),
	}
}

func (c *CategoryServiceClient) ListCategories(ctx context.Context, req *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

func (c *CategoryServiceClient) AddCategory(ctx context.Context, req *connect.Request[AddCategoryRequest]) (*connect.Response[AddCategoryResponse], error) {
	return c.addCategory.CallUnary(ctx, req)
}

func (c *CategoryServiceClient) DeleteCategory(ctx context.Context, req *connect.Request[DeleteCategoryRequest]) (*connect.Response[DeleteCategoryResponse], error) {
	return c.deleteCategory.CallUnary(ctx, req)
}

func (c *CategoryServiceClient) RenameCategory(ctx context.Context, req *connect.Request[RenameCategoryRequest]) (*connect.Response[RenameCategoryResponse], error) {
	return c.renameCategory.CallUnary(ctx, req)
}
