package parser

var cataloguePageOneResponse string = `<!DOCTYPE html>
<html lang="en-us" class="no-js">
<head>
    <title>All products | Books to Scrape - Sandbox</title>
    <meta http-equiv="content-type" content="text/html; charset=UTF-8" />
    <meta name="created" content="24th Jun 2016 09:29" />
    <meta name="description" content=" " />
    <meta name="viewport" content="width=device-width" />
</head>
<body id="default" class="default">
<div class="container-fluid page">
    <div class="page_inner">
        <div class="row">
            <div class="col-sm-8 col-md-9">
                <section>
                    <div>
                        <ol class="row">
                            <li class="col-xs-6 col-sm-4 col-md-3 col-lg-3">
                                <article class="product_pod">
                                    <div class="image_container">
                                        <a href="a-light-in-the-attic_1000/index.html"><img src="../media/cache/2c/da/2cdad67c44b002e7ead0cc35693c0e8b.jpg" alt="A Light in the Attic" class="thumbnail"></a>
                                    </div>
                                    <p class="star-rating Two">
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                    </p>
                                    <h3><a href="a-light-in-the-attic_1000/index.html" title="A Light in the Attic">A Light in the ...</a></h3>
                                    <div class="product_price">
                                        <p class="price_color">£10.00</p>
                                        <p class="instock availability">
                                            <i class="icon-ok"></i>
                                            In stock
                                        </p>
                                    </div>
                                </article>
                            </li>
                            <li class="col-xs-6 col-sm-4 col-md-3 col-lg-3">
                                <article class="product_pod">
                                    <div class="image_container">
                                        <a href="tipping-the-velvet_999/index.html"><img src="../media/cache/26/0c/260c6ae16bce31c8f8c95daddd9f4a1c.jpg" alt="Tipping the Velvet" class="thumbnail"></a>
                                    </div>
                                    <p class="star-rating Four">
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                    </p>
                                    <h3><a href="tipping-the-velvet_999/index.html" title="Tipping the Velvet">Tipping the Velvet</a></h3>
                                    <div class="product_price">
                                        <p class="price_color">£25.50</p>
                                        <p class="instock availability">
                                            <i class="icon-ok"></i>
                                            In stock
                                        </p>
                                    </div>
                                </article>
                            </li>
                            <li class="col-xs-6 col-sm-4 col-md-3 col-lg-3">
                                <article class="product_pod">
                                    <div class="image_container">
                                        <a href="soumission_998/index.html"><img src="../media/cache/3e/ef/3eef99c9d9adef34639f510662022830.jpg" alt="Soumission" class="thumbnail"></a>
                                    </div>
                                    <p class="star-rating Five">
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                        <i class="icon-star"></i>
                                    </p>
                                    <h3><a href="soumission_998/index.html" title="Soumission">Soumission</a></h3>
                                    <div class="product_price">
                                        <p class="price_color">£99.99</p>
                                        <p class="instock availability">
                                            <i class="icon-ok"></i>
                                            In stock
                                        </p>
                                    </div>
                                </article>
                            </li>
                        </ol>
                    </div>
                </section>
            </div>
        </div>
    </div>
</div>
</body>
</html>`

// same layout, second listing has no p.price_color at all
var cataloguePageMissingPriceResponse string = `<!DOCTYPE html>
<html lang="en-us" class="no-js">
<head>
    <title>All products | Books to Scrape - Sandbox</title>
</head>
<body id="default" class="default">
<div class="container-fluid page">
    <ol class="row">
        <li class="col-xs-6 col-sm-4 col-md-3 col-lg-3">
            <article class="product_pod">
                <p class="star-rating Three">
                    <i class="icon-star"></i>
                </p>
                <h3><a href="sharp-objects_997/index.html" title="Sharp Objects">Sharp Objects</a></h3>
                <div class="product_price">
                    <p class="price_color">£47.82</p>
                </div>
            </article>
        </li>
        <li class="col-xs-6 col-sm-4 col-md-3 col-lg-3">
            <article class="product_pod">
                <p class="star-rating One">
                    <i class="icon-star"></i>
                </p>
                <h3><a href="sapiens_996/index.html" title="Sapiens: A Brief History of Humankind">Sapiens: A Brief History ...</a></h3>
                <div class="product_price">
                    <p class="instock availability">
                        <i class="icon-ok"></i>
                        In stock
                    </p>
                </div>
            </article>
        </li>
        <li class="col-xs-6 col-sm-4 col-md-3 col-lg-3">
            <article class="product_pod">
                <p class="star-rating Five">
                    <i class="icon-star"></i>
                </p>
                <h3><a href="the-requiem-red_995/index.html" title="The Requiem Red">The Requiem Red</a></h3>
                <div class="product_price">
                    <p class="price_color">£22.65</p>
                </div>
            </article>
        </li>
    </ol>
</div>
</body>
</html>`

// one listing whose star-rating class carries an unknown word
var cataloguePageBadRatingResponse string = `<!DOCTYPE html>
<html lang="en-us" class="no-js">
<body id="default" class="default">
<ol class="row">
    <li class="col-xs-6 col-sm-4 col-md-3 col-lg-3">
        <article class="product_pod">
            <p class="star-rating Zero">
                <i class="icon-star"></i>
            </p>
            <h3><a href="set-me-free_988/index.html" title="Set Me Free">Set Me Free</a></h3>
            <div class="product_price">
                <p class="price_color">£17.46</p>
            </div>
        </article>
    </li>
</ol>
</body>
</html>`

var emptyCataloguePageResponse string = `<!DOCTYPE html>
<html lang="en-us" class="no-js">
<body id="default" class="default">
<ol class="row">
</ol>
</body>
</html>`

var detailPageResponse string = `<!DOCTYPE html>
<html lang="en-us" class="no-js">
<head>
    <title>A Light in the Attic | Books to Scrape - Sandbox</title>
</head>
<body id="default" class="default">
<div class="container-fluid page">
    <div class="content">
        <article class="product_page">
            <div id="product_description" class="sub-header">
                <h2>Product Description</h2>
            </div>
            <p>It's hard to imagine a world without A Light in the Attic. This now-classic collection of poetry and drawings from Shel Silverstein celebrates its 20th anniversary with this special edition.</p>
            <div class="sub-header">
                <h2>Products you recently viewed</h2>
            </div>
        </article>
    </div>
</div>
</body>
</html>`

var detailPageNoDescriptionResponse string = `<!DOCTYPE html>
<html lang="en-us" class="no-js">
<body id="default" class="default">
<div class="container-fluid page">
    <article class="product_page">
        <div class="sub-header">
            <h2>Products you recently viewed</h2>
        </div>
    </article>
</div>
</body>
</html>`
