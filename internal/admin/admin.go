// Package admin covers the staff console: inventory management for every
// catalog entity, seller activation, the customer directory, staff profile
// upkeep and the report derivations.
package admin

// Seller is a merchant record. Status drives whether the seller's products
// are purchasable on the storefront.
type Seller struct {
	SellerID    int    `json:"sellerId,omitempty"`
	SellerName  string `json:"sellerName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Status      string `json:"sellerStatus,omitempty"`
}

// Discount is a reusable price rule attached to products.
type Discount struct {
	DiscountID    int     `json:"discountId,omitempty"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
}

// Category, SubCategory and Brand are the writable taxonomy records.
type Category struct {
	CategoryID  int    `json:"categoryId,omitempty"`
	Name        string `json:"categoryName"`
	Description string `json:"categoryDescription,omitempty"`
	Image       string `json:"categoryImage,omitempty"`
}

type SubCategory struct {
	SubCategoryID int    `json:"subCategoryId,omitempty"`
	Name          string `json:"subCategoryName"`
	Description   string `json:"subCategoryDescription,omitempty"`
	CategoryID    int    `json:"categoryId"`
	CategoryName  string `json:"categoryName,omitempty"`
}

type Brand struct {
	BrandID     int    `json:"brandId,omitempty"`
	Name        string `json:"brandName"`
	Description string `json:"brandDescription,omitempty"`
	Image       string `json:"brandImage,omitempty"`
}

// Product is the admin's read projection: names resolved for display plus
// the ids needed to prefill the edit form.
type Product struct {
	ProductID       int     `json:"productId"`
	ProductName     string  `json:"productName"`
	Description     string  `json:"productDescription,omitempty"`
	SubDescription  string  `json:"productSubDescription,omitempty"`
	CategoryID      int     `json:"categoryId,omitempty"`
	CategoryName    string  `json:"categoryName,omitempty"`
	SubCategoryID   int     `json:"subCategoryId,omitempty"`
	SubCategoryName string  `json:"subCategoryName,omitempty"`
	BrandID         int     `json:"brandId,omitempty"`
	BrandName       string  `json:"brandName,omitempty"`
	SellerID        int     `json:"sellerId,omitempty"`
	SellerName      string  `json:"sellerName,omitempty"`
	DiscountID      int     `json:"discountId,omitempty"`
	ActualPrice     float64 `json:"actualPrice"`
	TotalPrice      float64 `json:"totalPrice,omitempty"`
	Color           string  `json:"color,omitempty"`
	Size            string  `json:"size,omitempty"`
}

// ProductForm is the create/update payload: every relation by id.
type ProductForm struct {
	CategoryID      int     `json:"categoryId"`
	SubCategoryID   int     `json:"subCategoryId"`
	BrandID         int     `json:"brandId"`
	SellerID        int     `json:"sellerId"`
	DiscountID      int     `json:"discountId,omitempty"`
	ProductName     string  `json:"productName"`
	Description     string  `json:"productDescription"`
	SubDescription  string  `json:"productSubDescription,omitempty"`
	ActualPrice     float64 `json:"actualPrice"`
	Color           string  `json:"color,omitempty"`
	Size            string  `json:"size,omitempty"`
	Image           string  `json:"image,omitempty"`
	ImageFrontView  string  `json:"imageFrontView,omitempty"`
	ImageTopView    string  `json:"imageTopView,omitempty"`
	ImageSideView   string  `json:"imageSideView,omitempty"`
	ImageBottomView string  `json:"imageBottomView,omitempty"`
}

// Inventory is a stock record binding a product to a seller's warehouse.
type Inventory struct {
	InventoryID       int    `json:"inventoryId,omitempty"`
	ProductID         int    `json:"productId"`
	StockQuantity     int    `json:"stockQuantity"`
	WareHouseLocation string `json:"wareHouseLocation"`
	SellerID          int    `json:"sellerId"`
}

// User is one row of the customer directory.
type User struct {
	UserID           int    `json:"userId"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Address          string `json:"address,omitempty"`
	PhoneNumber      string `json:"phoneNumber"`
	RegisteredAt     string `json:"registeredAt,omitempty"`
	MemberShipStatus string `json:"memberShipStatus,omitempty"`
	Role             string `json:"role,omitempty"`
}

// Profile is the staff member's own account projection.
type Profile struct {
	AdminID     int    `json:"adminId,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	UserName    string `json:"userName"`
	Role        string `json:"role,omitempty"`
}
